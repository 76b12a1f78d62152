// Package watchface renders an analog watch face on a small fixed-resolution
// display.
//
// Every tick the current time is turned into hand angles, the angles are
// projected onto the canvas through a fixed-point sine table, and the whole
// face is redrawn. A gesture shows or hides the date label.
package watchface

import (
	"fmt"
	"strings"
	"time"
)

// Palette used by the built-in themes.
var (
	White         = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	Black         = Color{R: 0x00, G: 0x00, B: 0x00}
	Yellow        = Color{R: 0xFF, G: 0xFF, B: 0x00}
	VividCerulean = Color{R: 0x00, G: 0xAA, B: 0xFF}
)

// Color represents an RGB color value. It satisfies color.Color and is
// always opaque.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// Hex returns the color as a CSS hex string.
func (c Color) Hex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0x0f]})
}

// Theme is the set of colors a face is drawn with.
type Theme struct {
	Name       string
	Background Color // screen fill and date label backdrop
	Rim        Color // outer ring and hub
	Dial       Color // disc inside the ring
	Hand       Color
	Accent     Color // second dot
	Text       Color
}

// ColorTheme is used on color displays.
var ColorTheme = Theme{
	Name:       "color",
	Background: VividCerulean,
	Rim:        White,
	Dial:       Black,
	Hand:       White,
	Accent:     Yellow,
	Text:       White,
}

// MonoTheme is used on black and white displays.
var MonoTheme = Theme{
	Name:       "mono",
	Background: Black,
	Rim:        White,
	Dial:       Black,
	Hand:       White,
	Accent:     White,
	Text:       White,
}

// Themes returns the built-in themes.
func Themes() []Theme {
	return []Theme{ColorTheme, MonoTheme}
}

// ThemeByName looks up a built-in theme, ignoring case.
func ThemeByName(name string) (Theme, error) {
	for _, t := range Themes() {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// Config controls how a Face runs.
type Config struct {
	// Theme is selected once at startup.
	Theme Theme

	// TickInterval is the redraw period (default: one second).
	TickInterval time.Duration
}

// DefaultConfig returns the color theme redrawn once per second.
func DefaultConfig() Config {
	return Config{
		Theme:        ColorTheme,
		TickInterval: time.Second,
	}
}
