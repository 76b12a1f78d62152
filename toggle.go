package watchface

// Visibility is the state of the date label.
type Visibility int

const (
	Shown Visibility = iota
	Hidden
)

// String returns "shown" or "hidden".
func (v Visibility) String() string {
	switch v {
	case Shown:
		return "shown"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Toggle returns the other state. Any value that is not Hidden counts as
// Shown, so the result is always one of the two states.
func (v Visibility) Toggle() Visibility {
	if v == Hidden {
		return Shown
	}
	return Hidden
}

// Axis is the accelerometer axis a gesture was detected on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Gesture is a discrete motion event such as a shake. The toggle ignores
// its payload.
type Gesture struct {
	Axis      Axis
	Direction int // +1 or -1
}
