package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Paddle Hit Sound
const (
	PaddleHitFrequency = 880.0
	PaddleHitDuration  = 50 * time.Millisecond
)

// Wall Bounce Sound
const (
	WallBounceFrequency = 440.0
	WallBounceDuration  = 30 * time.Millisecond
)

// Win Sound: short rising arpeggio
var WinSoundFrequencies = []float64{523.25, 659.25, 783.99, 1046.50}

const WinSoundNoteDuration = 90 * time.Millisecond

// AudioVolume is the linear gain applied to every effect
const AudioVolume = 0.3
