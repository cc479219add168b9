package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the tick interval (~60 FPS), one update and one draw per tick
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a terminal key counts as held after its last press or repeat
	// Terminals report no key-up events. The window covers the gap between auto-repeats,
	// not the longer delay before the first repeat, so a held key stalls briefly after its first step
	KeyHoldWindow = 120 * time.Millisecond
)
