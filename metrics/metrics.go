// Package metrics exports watch face activity to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/satindergrewal/watchface"
)

// Recorder implements watchface.Observer.
type Recorder struct {
	FramesRendered prometheus.Counter
	Gestures       *prometheus.CounterVec
	DateVisible    prometheus.Gauge
	LastRender     prometheus.Gauge
}

// New registers the watch face metrics with reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	r := &Recorder{
		FramesRendered: f.NewCounter(prometheus.CounterOpts{
			Namespace: "watchface",
			Name:      "frames_rendered_total",
			Help:      "Number of full face redraws.",
		}),
		Gestures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "watchface",
			Name:      "gestures_total",
			Help:      "Gestures handled, by resulting date label state.",
		}, []string{"state"}),
		DateVisible: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "watchface",
			Name:      "date_visible",
			Help:      "1 while the date label is shown.",
		}),
		LastRender: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "watchface",
			Name:      "last_render_seconds_of_day",
			Help:      "Time of day of the last rendered frame, in seconds.",
		}),
	}
	r.DateVisible.Set(1)
	return r
}

// Rendered counts a frame and records its time of day.
func (r *Recorder) Rendered(s watchface.TimeSample) {
	r.FramesRendered.Inc()
	r.LastRender.Set(float64(s.Hour*3600 + s.Minute*60 + s.Second))
}

// Toggled counts a gesture and updates the visibility gauge.
func (r *Recorder) Toggled(v watchface.Visibility) {
	r.Gestures.WithLabelValues(v.String()).Inc()
	if v == watchface.Shown {
		r.DateVisible.Set(1)
	} else {
		r.DateVisible.Set(0)
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
