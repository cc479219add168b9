package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays short effects for game events through a shared mixer
// Playback is optional, every Play call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	// sink hands a finished effect to the output, replaced in tests
	sink func(beep.Streamer)
}

// NewSoundManager creates a manager with linear volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	sm.sink = sm.playOnSpeaker
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// React plays the effects for the events of the last tick
// A win drowns out the hit and bounce of the same tick
func (sm *SoundManager) React(ev game.Event) {
	switch {
	case ev.Has(game.EventWin):
		sm.PlayWin()
	case ev.Has(game.EventPaddleHit):
		sm.PlayPaddleHit()
	case ev.Has(game.EventWallBounce):
		sm.PlayWallBounce()
	}
}

// PlayPaddleHit plays a short high sine blip
func (sm *SoundManager) PlayPaddleHit() {
	sine, err := generators.SineTone(sampleRate, parameter.PaddleHitFrequency)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(parameter.PaddleHitDuration), sine))
}

// PlayWallBounce plays a softer triangle blip
func (sm *SoundManager) PlayWallBounce() {
	d := parameter.WallBounceDuration
	sm.play(NewToneGenerator(sampleRate, waveTriangle, parameter.WallBounceFrequency, d, d/10, d/2))
}

// PlayWin plays a rising arpeggio
func (sm *SoundManager) PlayWin() {
	d := parameter.WinSoundNoteDuration
	notes := make([]beep.Streamer, 0, len(parameter.WinSoundFrequencies))
	for _, freq := range parameter.WinSoundFrequencies {
		notes = append(notes, NewToneGenerator(sampleRate, waveSquare, freq, d, d/20, d/3))
	}
	sm.play(beep.Seq(notes...))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}
	// Gain scales by 1+Gain
	sm.sink(&effects.Gain{Streamer: s, Gain: sm.volume - 1})
}

func (sm *SoundManager) playOnSpeaker(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
