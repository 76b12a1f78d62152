// Package raster draws watch faces into in-memory RGBA images.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/satindergrewal/watchface"
)

// labelScale enlarges the bitmap font so the date reads at watch size.
const labelScale = 2

// Canvas is a watchface.Canvas backed by an *image.RGBA the size of the
// target display. The date label is kept as a separate layer and only
// composited by Frame.
type Canvas struct {
	img   *image.RGBA
	ink   color.RGBA
	theme watchface.Theme

	text     string
	textInk  color.RGBA
	textShow bool
}

// New returns a canvas filled with the theme background. The label is
// drawn in the theme's text color on its background color.
func New(theme watchface.Theme) *Canvas {
	c := &Canvas{
		img:     image.NewRGBA(watchface.CanvasBounds),
		theme:   theme,
		ink:     rgba(theme.Text),
		textInk: rgba(theme.Text),
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(theme.Background), image.Point{}, draw.Src)
	return c
}

func rgba(c watchface.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// SetColor sets the ink for the following draw calls.
func (c *Canvas) SetColor(col watchface.Color) {
	c.ink = rgba(col)
}

// FillRect fills r, clipped to the canvas.
func (c *Canvas) FillRect(r image.Rectangle) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(c.ink), image.Point{}, draw.Src)
}

// FillCircle sets every pixel whose offset from center is within radius.
func (c *Canvas) FillCircle(center image.Point, radius int) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.img.SetRGBA(center.X+dx, center.Y+dy, c.ink)
			}
		}
	}
}

// DrawLine draws a one pixel line with Bresenham's algorithm. Pixels
// outside the canvas are dropped.
func (c *Canvas) DrawLine(from, to image.Point) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	x, y := from.X, from.Y
	e := dx + dy
	for {
		c.img.SetRGBA(x, y, c.ink)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SetText sets the label text and takes the current ink as its color.
func (c *Canvas) SetText(text string) {
	c.text = text
	c.textInk = c.ink
}

// SetTextVisible controls whether Frame composites the label.
func (c *Canvas) SetTextVisible(visible bool) {
	c.textShow = visible
}

// Text returns the current label text.
func (c *Canvas) Text() string {
	return c.text
}

// TextVisible reports whether the label is composited by Frame.
func (c *Canvas) TextVisible() bool {
	return c.textShow
}

// Frame returns a copy of the canvas with the date label on top when it is
// visible. The canvas itself is not modified.
func (c *Canvas) Frame() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	if c.textShow {
		c.drawLabel(out)
	}
	return out
}

// drawLabel paints the label backdrop and the text centered in
// DateLabelBounds.
func (c *Canvas) drawLabel(dst *image.RGBA) {
	box := watchface.DateLabelBounds
	draw.Draw(dst, box.Intersect(dst.Bounds()), image.NewUniform(c.theme.Background), image.Point{}, draw.Src)
	if c.text == "" {
		return
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, c.text).Ceil()
	glyphs := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c.textInk),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(c.text)

	w, h := width*labelScale, face.Height*labelScale
	x := box.Min.X + (box.Dx()-w)/2
	y := box.Min.Y + 2
	xdraw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+w, y+h), glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

// Snapshot renders a single frame for sample without running a Face.
func Snapshot(sample watchface.TimeSample, theme watchface.Theme, date watchface.Visibility) *image.RGBA {
	c := New(theme)
	watchface.Render(c, sample, theme)
	c.SetTextVisible(date == watchface.Shown)
	return c.Frame()
}
