// Package term shows a watch face in a terminal with tcell and turns key
// presses and clicks into gestures.
package term

import (
	"context"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/satindergrewal/watchface"
	"github.com/satindergrewal/watchface/raster"
)

// upperHalf paints the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = '▀'

// Display is a watchface.Canvas that presents itself on a tcell screen.
// Drawing goes to an in-memory raster canvas; Flush copies the composed
// frame to the terminal, two pixels per cell.
type Display struct {
	*raster.Canvas

	screen tcell.Screen
	status string
	style  tcell.Style
}

// New wraps screen. The screen must already be initialised.
func New(screen tcell.Screen, theme watchface.Theme) *Display {
	return &Display{
		Canvas: raster.New(theme),
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcellColor(theme.Text)).Background(tcell.ColorBlack),
	}
}

// SetStatus sets a one line hint shown under the face when there is room.
func (d *Display) SetStatus(s string) {
	d.status = s
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Flush scales the current frame to fit the screen, keeping its aspect
// ratio, and shows it.
func (d *Display) Flush() {
	frame := d.Frame()
	cols, rows := d.screen.Size()
	d.screen.Clear()

	faceRows := rows
	if d.status != "" && rows > 1 {
		faceRows = rows - 1
	}
	drawFrame(d.screen, frame, cols, faceRows)

	if faceRows < rows {
		w := runewidth.StringWidth(d.status)
		x := (cols - w) / 2
		if x < 0 {
			x = 0
		}
		for _, r := range d.status {
			d.screen.SetContent(x, rows-1, r, nil, d.style)
			x += runewidth.RuneWidth(r)
		}
	}
	d.screen.Show()
}

// drawFrame paints frame into the top-left cols×rows cells, nearest
// neighbour, centred.
func drawFrame(screen tcell.Screen, frame *image.RGBA, cols, rows int) {
	b := frame.Bounds()
	pw, ph := cols, rows*2
	scale := min(float64(pw)/float64(b.Dx()), float64(ph)/float64(b.Dy()))
	if scale <= 0 {
		return
	}
	outW, outH := int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)
	offX, offY := (pw-outW)/2, (ph-outH)/2

	sample := func(x, y int) (tcell.Color, bool) {
		x, y = x-offX, y-offY
		if x < 0 || y < 0 || x >= outW || y >= outH {
			return tcell.ColorDefault, false
		}
		sx := b.Min.X + int(float64(x)/scale)
		sy := b.Min.Y + int(float64(y)/scale)
		return tcellColor(frame.RGBAAt(sx, sy)), true
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, okTop := sample(col, row*2)
			bottom, okBottom := sample(col, row*2+1)
			if !okTop && !okBottom {
				continue
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

// Events carries what the terminal reported.
type Events struct {
	Gestures <-chan watchface.Gesture
	Redraw   <-chan struct{}
	Quit     <-chan struct{}
}

// Events polls the screen until ctx is done or the screen is finalised.
// q, Esc and Ctrl-C quit. Arrow keys are gestures along X or Y, any other key
// or a mouse click is a shake along Z. Resizes ask for a redraw.
func (d *Display) Events(ctx context.Context) Events {
	gestures := make(chan watchface.Gesture)
	redraw := make(chan struct{}, 1)
	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}

			var g watchface.Gesture
			switch ev := ev.(type) {
			case *tcell.EventResize:
				select {
				case redraw <- struct{}{}:
				default:
				}
				continue
			case *tcell.EventKey:
				var stop bool
				g, stop = keyGesture(ev)
				if stop {
					return
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.ButtonPrimary == 0 {
					continue
				}
				g = watchface.Gesture{Axis: watchface.AxisZ, Direction: 1}
			default:
				continue
			}

			select {
			case gestures <- g:
			case <-ctx.Done():
				return
			}
		}
	}()

	return Events{Gestures: gestures, Redraw: redraw, Quit: quit}
}

func keyGesture(ev *tcell.EventKey) (g watchface.Gesture, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return g, true
	case tcell.KeyUp:
		return watchface.Gesture{Axis: watchface.AxisY, Direction: 1}, false
	case tcell.KeyDown:
		return watchface.Gesture{Axis: watchface.AxisY, Direction: -1}, false
	case tcell.KeyLeft:
		return watchface.Gesture{Axis: watchface.AxisX, Direction: -1}, false
	case tcell.KeyRight:
		return watchface.Gesture{Axis: watchface.AxisX, Direction: 1}, false
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return g, true
		}
	}
	return watchface.Gesture{Axis: watchface.AxisZ, Direction: 1}, false
}
