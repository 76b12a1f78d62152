// Package server exposes a running watch face over HTTP: the current frame
// as PNG, its geometry as JSON, a gesture endpoint and Prometheus metrics.
package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/satindergrewal/watchface"
	"github.com/satindergrewal/watchface/raster"
)

// ---------- JSON response types ----------

type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type handJSON struct {
	Angle  int32     `json:"angle"`
	Tip    pointJSON `json:"tip"`
	Length float64   `json:"length"`
}

type themeJSON struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Rim        string `json:"rim"`
	Dial       string `json:"dial"`
	Hand       string `json:"hand"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
}

type faceJSON struct {
	Time        string    `json:"time"`
	Center      pointJSON `json:"center"`
	SecondAngle int32     `json:"secondAngle"`
	SecondDot   pointJSON `json:"secondDot"`
	Minute      handJSON  `json:"minute"`
	Hour        handJSON  `json:"hour"`
	Date        string    `json:"date"`
	Label       string    `json:"label"`
	FullCircle  int       `json:"fullCircle"`
	Theme       themeJSON `json:"theme"`
}

// Server serves one Face drawing into a raster canvas. Every canvas access
// goes through Face.Do, so handlers never race the render loop.
type Server struct {
	face    *watchface.Face
	canvas  *raster.Canvas
	metrics http.Handler
	log     *slog.Logger
}

// New returns a Server. metrics may be nil.
func New(face *watchface.Face, canvas *raster.Canvas, metrics http.Handler, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{face: face, canvas: canvas, metrics: metrics, log: log}
}

// Router builds the chi router with the usual middleware stack.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the handlers on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", s.health)
	r.Get("/face.png", s.facePNG)
	r.Get("/api/face", s.faceJSON)
	r.Post("/api/gesture", s.gesture)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok\n"))
}

func (s *Server) facePNG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	var encErr error
	err := s.face.Do(r.Context(), func() {
		encErr = png.Encode(&buf, s.canvas.Frame())
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if encErr != nil {
		s.log.Error("encode frame", "err", encErr)
		http.Error(w, "encode frame", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (s *Server) faceJSON(w http.ResponseWriter, r *http.Request) {
	var label watchface.Visibility
	var now time.Time
	err := s.face.Do(r.Context(), func() {
		label = s.face.Visibility()
		now = s.face.LastTick()
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	resp := buildResponse(now, watchface.SampleFromTime(now), s.face.Theme(), label)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("encode face", "err", err)
	}
}

func (s *Server) gesture(w http.ResponseWriter, r *http.Request) {
	var label watchface.Visibility
	err := s.face.Do(r.Context(), func() {
		s.face.Gesture(watchface.Gesture{Axis: watchface.AxisZ, Direction: 1})
		label = s.face.Visibility()
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	s.log.Debug("gesture", "label", label)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"label": label.String()})
}

func buildResponse(now time.Time, sample watchface.TimeSample, theme watchface.Theme, label watchface.Visibility) faceJSON {
	center := watchface.CenterOf(watchface.CanvasBounds)
	h := watchface.ComposeHands(sample, center)
	pt := func(x, y int) pointJSON { return pointJSON{X: x, Y: y} }

	return faceJSON{
		Time:        now.Format(time.RFC3339),
		Center:      pt(center.X, center.Y),
		SecondAngle: h.Angles.Second,
		SecondDot:   pt(h.SecondDot.X, h.SecondDot.Y),
		Minute: handJSON{
			Angle:  h.Angles.Minute,
			Tip:    pt(h.Minute.Tip.X, h.Minute.Tip.Y),
			Length: h.Minute.Length(),
		},
		Hour: handJSON{
			Angle:  h.Angles.Hour,
			Tip:    pt(h.Hour.Tip.X, h.Hour.Tip.Y),
			Length: h.Hour.Length(),
		},
		Date:       h.Date,
		Label:      label.String(),
		FullCircle: watchface.FullCircle,
		Theme: themeJSON{
			Name:       theme.Name,
			Background: theme.Background.Hex(),
			Rim:        theme.Rim.Hex(),
			Dial:       theme.Dial.Hex(),
			Hand:       theme.Hand.Hex(),
			Accent:     theme.Accent.Hex(),
			Text:       theme.Text.Hex(),
		},
	}
}
