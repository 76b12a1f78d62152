package watchface

import (
	"context"
	"time"
)

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Observer is told about every rendered frame and every label toggle.
type Observer interface {
	Rendered(sample TimeSample)
	Toggled(v Visibility)
}

type nopObserver struct{}

func (nopObserver) Rendered(TimeSample) {}
func (nopObserver) Toggled(Visibility)  {}

// Option configures a Face.
type Option func(*Face)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(f *Face) { f.clock = c }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(f *Face) { f.observer = o }
}

// Face binds a canvas to a tick source and a gesture source. It owns the
// canvas handle and the date label state; all of its methods must be called
// from one goroutine, which Run provides.
type Face struct {
	canvas   Canvas
	theme    Theme
	clock    Clock
	observer Observer
	date     Visibility
	lastTick time.Time
	calls    chan func()
}

// NewFace prepares canvas for drawing. The date label starts visible and
// shows DatePlaceholder until the first frame is rendered.
func NewFace(canvas Canvas, cfg Config, opts ...Option) *Face {
	f := &Face{
		canvas:   canvas,
		theme:    cfg.Theme,
		clock:    systemClock{},
		observer: nopObserver{},
		date:     Shown,
		calls:    make(chan func()),
	}
	for _, opt := range opts {
		opt(f)
	}

	canvas.SetColor(f.theme.Text)
	canvas.SetText(DatePlaceholder)
	canvas.SetTextVisible(true)
	return f
}

// Now reads the face's clock.
func (f *Face) Now() time.Time {
	return f.clock.Now()
}

// Theme returns the theme the face was created with.
func (f *Face) Theme() Theme {
	return f.theme
}

// Visibility returns the current state of the date label.
func (f *Face) Visibility() Visibility {
	return f.date
}

// LastTick returns the time the canvas was last rendered for, or the zero
// time before the first tick.
func (f *Face) LastTick() time.Time {
	return f.lastTick
}

// Tick redraws the face for now.
func (f *Face) Tick(now time.Time) {
	f.lastTick = now
	sample := SampleFromTime(now)
	Render(f.canvas, sample, f.theme)
	f.flush()
	f.observer.Rendered(sample)
}

// Gesture flips the date label. Hands and background are not touched.
func (f *Face) Gesture(Gesture) {
	f.date = f.date.Toggle()
	f.canvas.SetTextVisible(f.date == Shown)
	f.flush()
	f.observer.Toggled(f.date)
}

func (f *Face) flush() {
	if fl, ok := f.canvas.(Flusher); ok {
		fl.Flush()
	}
}

// Run draws the first frame and then serves ticks, gestures and Do calls
// until ctx is done. Each event is handled to completion before the next one
// is read. A tick is rendered for the time it fired, not the time it was
// read. Closed channels are ignored.
func (f *Face) Run(ctx context.Context, ticks <-chan time.Time, gestures <-chan Gesture) error {
	f.Tick(f.clock.Now())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				ticks = nil
				continue
			}
			f.Tick(now)
		case g, ok := <-gestures:
			if !ok {
				gestures = nil
				continue
			}
			f.Gesture(g)
		case fn := <-f.calls:
			fn()
		}
	}
}

// Do runs fn on the goroutine executing Run and waits for it to return. It
// lets other goroutines read or present the canvas between frames.
func (f *Face) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	call := func() {
		defer close(done)
		fn()
	}

	select {
	case f.calls <- call:
	case <-ctx.Done():
		return ctx.Err()
	}

	<-done
	return nil
}

// AlignedTicks sends clock's time on the returned channel at every multiple
// of interval, starting with the next boundary. The wait is recomputed from
// clock after every tick, so ticks follow the clock when its offset changes.
// A nil clock reads the system time and a non-positive interval means one
// second. A tick that cannot be delivered because the reader is busy is
// dropped. The channel is closed when ctx is done.
func AlignedTicks(ctx context.Context, clock Clock, interval time.Duration) <-chan time.Time {
	if clock == nil {
		clock = systemClock{}
	}
	if interval <= 0 {
		interval = time.Second
	}
	ch := make(chan time.Time, 1)
	go func() {
		defer close(ch)

		now := clock.Now()
		next := now.Truncate(interval).Add(interval)
		timer := time.NewTimer(next.Sub(now))
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			now = clock.Now()
			if now.Before(next) {
				// The clock was set back; wait for it to reach the boundary.
				timer.Reset(next.Sub(now))
				continue
			}
			send(ch, now)
			next = now.Truncate(interval).Add(interval)
			timer.Reset(next.Sub(clock.Now()))
		}
	}()
	return ch
}

func send(ch chan<- time.Time, t time.Time) {
	select {
	case ch <- t:
	default:
	}
}
