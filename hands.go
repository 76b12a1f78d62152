package watchface

import (
	"fmt"
	"image"
	"math"
	"time"
)

// DatePlaceholder is shown on the date label until a date has been
// formatted.
const DatePlaceholder = "NULL"

// HandVector is a hand drawn from Origin (the face center) to Tip.
type HandVector struct {
	Origin image.Point
	Tip    image.Point
}

// Length returns the Euclidean length of the hand in pixels.
func (h HandVector) Length() float64 {
	d := h.Tip.Sub(h.Origin)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// Hands is the time-dependent part of a frame.
type Hands struct {
	Angles    AngleSet
	SecondDot image.Point
	Minute    HandVector
	Hour      HandVector
	Date      string
}

// ComposeHands computes hand geometry around center and the date text for
// sample.
func ComposeHands(sample TimeSample, center image.Point) Hands {
	angles := ComputeAngles(sample)
	return Hands{
		Angles:    angles,
		SecondDot: Project(angles.Second, RimRadius, center),
		Minute: HandVector{
			Origin: center,
			Tip:    Project(angles.Minute, MinuteHandLength, center),
		},
		Hour: HandVector{
			Origin: center,
			Tip:    Project(angles.Hour, HourHandLength, center),
		},
		Date: FormatDate(sample),
	}
}

// Primitives returns the draw order for the hands: second dot, then the
// minute and hour hands.
func (h Hands) Primitives(theme Theme) []Primitive {
	return []Primitive{
		FillCircle{Color: theme.Accent, Center: h.SecondDot, Radius: SecondDotRadius},
		Line{Color: theme.Hand, From: h.Minute.Tip, To: h.Minute.Origin},
		Line{Color: theme.Hand, From: h.Hour.Tip, To: h.Hour.Origin},
	}
}

// FormatDate renders the sample's date as MMDD. A sample without a valid
// calendar date yields DatePlaceholder.
func FormatDate(s TimeSample) string {
	if s.Month < time.January || s.Month > time.December || s.Day < 1 || s.Day > 31 {
		return DatePlaceholder
	}
	return fmt.Sprintf("%02d%02d", int(s.Month), s.Day)
}
