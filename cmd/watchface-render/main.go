// Command watchface-render renders watch face frames as PNG images, one per
// second starting at a given time. Optionally stitches them into an
// animated GIF.
//
// Usage:
//
//	watchface-render -at 2026-07-04T03:15:30Z -frames 10 -out frames/ -gif face.gif
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/satindergrewal/watchface"
	"github.com/satindergrewal/watchface/config"
	"github.com/satindergrewal/watchface/raster"
)

func main() {
	at := flag.String("at", "", "Time to render, RFC 3339 (default: now)")
	frames := flag.Int("frames", 1, "Number of consecutive seconds to render")
	outDir := flag.String("out", "frames", "Output directory for PNG frames")
	gifPath := flag.String("gif", "", "Also write an animated GIF to this path")
	themeName := flag.String("theme", "", "Theme: color or mono")
	configPath := flag.String("config", "", "HCL config file")
	hideDate := flag.Bool("hide-date", false, "Render with the date label hidden")
	flag.Parse()

	var file *config.File
	if *configPath != "" {
		var err error
		if file, err = config.Load(*configPath); err != nil {
			fail("%v", err)
		}
	}
	cfg, err := file.Face()
	if err != nil {
		fail("%v", err)
	}
	if *themeName != "" {
		if cfg.Theme, err = watchface.ThemeByName(*themeName); err != nil {
			fail("%v", err)
		}
	}

	start := time.Now()
	if *at != "" {
		if start, err = time.Parse(time.RFC3339, *at); err != nil {
			fail("parsing -at: %v", err)
		}
	}
	if *frames < 1 {
		fail("-frames must be at least 1")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fail("creating output dir: %v", err)
	}

	date := watchface.Shown
	if *hideDate {
		date = watchface.Hidden
	}

	fmt.Printf("Rendering %d frame(s) from %s (%s theme)\n", *frames, start.Format(time.RFC3339), cfg.Theme.Name)

	var anim gif.GIF
	for i := 0; i < *frames; i++ {
		now := start.Add(time.Duration(i) * time.Second)
		img := raster.Snapshot(watchface.SampleFromTime(now), cfg.Theme, date)

		filename := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", i))
		if err := writePNG(filename, img); err != nil {
			fail("%v", err)
		}
		fmt.Printf("  frame %d/%d %s → %s\n", i+1, *frames, now.Format("15:04:05"), filename)

		if *gifPath != "" {
			anim.Image = append(anim.Image, paletted(img, cfg.Theme))
			anim.Delay = append(anim.Delay, 100)
		}
	}

	if *gifPath != "" {
		f, err := os.Create(*gifPath)
		if err != nil {
			fail("creating %s: %v", *gifPath, err)
		}
		if err := gif.EncodeAll(f, &anim); err != nil {
			f.Close()
			fail("encoding GIF: %v", err)
		}
		f.Close()
		fmt.Printf("  GIF → %s (1 FPS, loop forever)\n", *gifPath)
	}

	fmt.Println("Done.")
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return f.Close()
}

// paletted maps img onto the theme colors. Frames are drawn without
// anti-aliasing, so the mapping is exact.
func paletted(img image.Image, theme watchface.Theme) *image.Paletted {
	pal := color.Palette{theme.Background, theme.Rim, theme.Dial, theme.Hand, theme.Accent, theme.Text}
	p := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(p, p.Rect, img, img.Bounds().Min, draw.Src)
	return p
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
