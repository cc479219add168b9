package terminal

import (
	"sync"
	"time"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/parameter"
)

// HeldKeys infers held keys from press and repeat events
// Written by the input goroutine and read by the frame driver, guarded by mu
type HeldKeys struct {
	mu     sync.RWMutex
	clock  engine.TimeProvider
	window time.Duration
	last   [engine.KeyCount]time.Time
}

var _ engine.KeyState = (*HeldKeys)(nil)

// NewHeldKeys creates a tracker, a non-positive window selects parameter.KeyHoldWindow
func NewHeldKeys(clock engine.TimeProvider, window time.Duration) *HeldKeys {
	if window <= 0 {
		window = parameter.KeyHoldWindow
	}
	return &HeldKeys{
		clock:  clock,
		window: window,
	}
}

// Press records a press or auto-repeat of k
func (h *HeldKeys) Press(k engine.Key) {
	if k >= engine.KeyCount {
		return
	}
	now := h.clock.Now()
	h.mu.Lock()
	h.last[k] = now
	h.mu.Unlock()
}

// ReleaseAll forgets every key, used on focus loss and resize
func (h *HeldKeys) ReleaseAll() {
	h.mu.Lock()
	h.last = [engine.KeyCount]time.Time{}
	h.mu.Unlock()
}

// IsKeyHeld reports whether k was pressed within the hold window
func (h *HeldKeys) IsKeyHeld(k engine.Key) bool {
	if k >= engine.KeyCount {
		return false
	}
	h.mu.RLock()
	last := h.last[k]
	h.mu.RUnlock()

	if last.IsZero() {
		return false
	}
	return h.clock.Now().Sub(last) < h.window
}

// Window returns the hold window
func (h *HeldKeys) Window() time.Duration {
	return h.window
}
