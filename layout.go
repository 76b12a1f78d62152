package watchface

import "image"

// Size of the target display in pixels.
const (
	CanvasWidth  = 144
	CanvasHeight = 168
)

// Face geometry in pixels.
const (
	RimRadius        = 64
	DialRadius       = 61
	HubRadius        = 5
	SecondDotRadius  = 5
	MinuteHandLength = 74
	HourHandLength   = 54
)

// The minute hand must stay longer than the hour hand.
var _ [MinuteHandLength - HourHandLength - 1]struct{}

// CanvasBounds is the rectangle of the target display.
var CanvasBounds = image.Rect(0, 0, CanvasWidth, CanvasHeight)

// DateLabelBounds is where the date label layer sits. It runs past the
// bottom edge of the canvas and is clipped there.
var DateLabelBounds = image.Rect(0, 130, 144, 170)

// CenterOf returns the center point of r, rounding down.
func CenterOf(r image.Rectangle) image.Point {
	return image.Point{
		X: r.Min.X + r.Dx()/2,
		Y: r.Min.Y + r.Dy()/2,
	}
}

// Project converts an angle measured clockwise from 12 o'clock and a radius
// into canvas coordinates around center. The fixed-point products are
// divided with truncation toward zero, so tips can land one pixel short of
// the exact position.
func Project(angle int32, radius int, center image.Point) image.Point {
	r := int32(radius)
	return image.Point{
		X: center.X + int(SinLookup(angle)*r/TrigMaxRatio),
		Y: center.Y + int(-CosLookup(angle)*r/TrigMaxRatio),
	}
}
