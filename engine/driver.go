package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pong/parameter"
)

// Driver is the frame clock: one Update then one Draw per tick on the calling goroutine
// Quit is cooperative, the flag is checked between ticks and never interrupts one
type Driver struct {
	keys     KeyState
	renderer Renderer
	interval time.Duration

	afterUpdate func()

	quit  atomic.Bool
	ticks atomic.Uint64
}

// NewDriver creates a driver polling keys and drawing to renderer every interval
// A non-positive interval selects parameter.FrameUpdateInterval
func NewDriver(keys KeyState, renderer Renderer, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &Driver{
		keys:     keys,
		renderer: renderer,
		interval: interval,
	}
}

// OnUpdate registers fn to run after every successful Update, before Draw
func (d *Driver) OnUpdate(fn func()) {
	d.afterUpdate = fn
}

// IsKeyHeld implements Context
func (d *Driver) IsKeyHeld(k Key) bool {
	if d.keys == nil {
		return false
	}
	return d.keys.IsKeyHeld(k)
}

// RequestQuit implements Context, safe to call from any goroutine
func (d *Driver) RequestQuit() {
	d.quit.Store(true)
}

// Quit reports whether a stop was requested
func (d *Driver) Quit() bool {
	return d.quit.Load()
}

// Ticks returns the number of ticks started so far
func (d *Driver) Ticks() uint64 {
	return d.ticks.Load()
}

// Interval returns the tick interval
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Step runs a single tick, Draw always follows a successful Update
// A quit requested during the tick takes effect before the next one
func (d *Driver) Step(g Game) error {
	d.ticks.Add(1)

	if err := g.Update(d); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if d.afterUpdate != nil {
		d.afterUpdate()
	}

	if err := g.Draw(d.renderer); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if p, ok := d.renderer.(Presenter); ok {
		p.Present()
	}
	return nil
}

// Run ticks g until quit is requested, ctx is cancelled, or a tick fails
// Returns nil on quit and cancellation, the tick error otherwise
func (d *Driver) Run(ctx context.Context, g Game) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		if d.quit.Load() {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// Quit may have arrived from the input goroutine while waiting
			if d.quit.Load() {
				return nil
			}
			if err := d.Step(g); err != nil {
				return err
			}
		}
	}
}
