package watchface

import (
	"fmt"
	"image"
)

// Canvas is a drawable surface owned by the host. The renderer only writes
// to it.
type Canvas interface {
	Bounds() image.Rectangle
	SetColor(c Color)
	FillRect(r image.Rectangle)
	FillCircle(center image.Point, radius int)
	DrawLine(from, to image.Point)

	// SetText sets the date label text, drawn in the current color.
	SetText(text string)
	SetTextVisible(visible bool)
}

// Flusher is implemented by canvases that need an explicit present step
// once a frame is complete.
type Flusher interface {
	Flush()
}

// Recorder is a Canvas that keeps a textual log of every call.
type Recorder struct {
	Ops []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset drops the recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) record(format string, args ...any) {
	r.Ops = append(r.Ops, fmt.Sprintf(format, args...))
}

// Bounds returns CanvasBounds.
func (r *Recorder) Bounds() image.Rectangle {
	return CanvasBounds
}

// SetColor records "color #rrggbb".
func (r *Recorder) SetColor(c Color) {
	r.record("color %s", c.Hex())
}

// FillRect records "rect (x0,y0)-(x1,y1)".
func (r *Recorder) FillRect(rect image.Rectangle) {
	r.record("rect %v", rect)
}

// FillCircle records "circle (x,y) r=N".
func (r *Recorder) FillCircle(center image.Point, radius int) {
	r.record("circle %v r=%d", center, radius)
}

// DrawLine records "line (x0,y0)-(x1,y1)".
func (r *Recorder) DrawLine(from, to image.Point) {
	r.record("line %v-%v", from, to)
}

// SetText records the quoted text.
func (r *Recorder) SetText(text string) {
	r.record("text %q", text)
}

// SetTextVisible records "visible true" or "visible false".
func (r *Recorder) SetTextVisible(visible bool) {
	r.record("visible %t", visible)
}
