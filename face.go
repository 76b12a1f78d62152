package watchface

import "image"

// Primitive is one drawing instruction.
type Primitive interface {
	Draw(c Canvas)
}

// FillRect fills Rect with Color.
type FillRect struct {
	Color Color
	Rect  image.Rectangle
}

// Draw implements Primitive.
func (p FillRect) Draw(c Canvas) {
	c.SetColor(p.Color)
	c.FillRect(p.Rect)
}

// FillCircle fills a disc.
type FillCircle struct {
	Color  Color
	Center image.Point
	Radius int
}

// Draw implements Primitive.
func (p FillCircle) Draw(c Canvas) {
	c.SetColor(p.Color)
	c.FillCircle(p.Center, p.Radius)
}

// Line draws a one pixel segment from From to To.
type Line struct {
	Color    Color
	From, To image.Point
}

// Draw implements Primitive.
func (p Line) Draw(c Canvas) {
	c.SetColor(p.Color)
	c.DrawLine(p.From, p.To)
}

// ComposeFace returns the static background: the screen fill, a ring made
// of two concentric discs, and the hub. It does not depend on the time.
func ComposeFace(bounds image.Rectangle, theme Theme) []Primitive {
	center := CenterOf(bounds)
	return []Primitive{
		FillRect{Color: theme.Background, Rect: bounds},
		FillCircle{Color: theme.Rim, Center: center, Radius: RimRadius},
		FillCircle{Color: theme.Dial, Center: center, Radius: DialRadius},
		FillCircle{Color: theme.Rim, Center: center, Radius: HubRadius},
	}
}
