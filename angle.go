package watchface

import "time"

// FullCircle is one revolution in the fixed-point angle domain.
const FullCircle = 0x10000

// TimeSample is the time of day a frame is drawn for, plus the calendar
// date shown on the label.
type TimeSample struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
	Month  time.Month
	Day    int
}

// SampleFromTime reads a TimeSample off t in t's location.
func SampleFromTime(t time.Time) TimeSample {
	hour, minute, sec := t.Clock()
	_, month, day := t.Date()
	return TimeSample{
		Hour:   hour,
		Minute: minute,
		Second: sec,
		Month:  month,
		Day:    day,
	}
}

// AngleSet holds the hand angles, each in [0, FullCircle), measured
// clockwise from 12 o'clock.
type AngleSet struct {
	Hour   int32
	Minute int32
	Second int32
}

// ComputeAngles converts a sample into hand angles. Division truncates, so
// the hands tick rather than sweep and the hour hand moves in 10 minute
// steps.
func ComputeAngles(s TimeSample) AngleSet {
	return AngleSet{
		Second: FullCircle * int32(s.Second) / 60,
		Minute: FullCircle * int32(s.Minute) / 60,
		Hour:   FullCircle * int32((s.Hour%12)*6+s.Minute/10) / (12 * 6),
	}
}
