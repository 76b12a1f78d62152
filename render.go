package watchface

// Render redraws the whole face for sample: background, then hands, then
// the date label text. Nothing is carried over from earlier frames, so the
// calls made on c depend only on sample and theme.
func Render(c Canvas, sample TimeSample, theme Theme) {
	bounds := c.Bounds()
	for _, p := range ComposeFace(bounds, theme) {
		p.Draw(c)
	}

	hands := ComposeHands(sample, CenterOf(bounds))
	for _, p := range hands.Primitives(theme) {
		p.Draw(c)
	}

	c.SetColor(theme.Text)
	c.SetText(hands.Date)
}
