package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
)

// ToneGenerator streams a single finite tone with a linear attack/release envelope
type ToneGenerator struct {
	sr       beep.SampleRate
	wave     int
	freq     float64
	total    int
	attack   int
	release  int
	pos      int
	phase    float64
	phaseInc float64
}

// NewToneGenerator creates a tone of the given waveform, length and envelope
func NewToneGenerator(sr beep.SampleRate, wave int, freq float64, duration, attack, release time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:       sr,
		wave:     wave,
		freq:     freq,
		total:    sr.N(duration),
		attack:   sr.N(attack),
		release:  sr.N(release),
		phaseInc: freq / float64(sr),
	}
}

// Stream implements beep.Streamer, drained once the tone ends
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		sample := g.oscillate() * g.envelope()
		samples[i][0] = sample
		samples[i][1] = sample

		g.pos++
		g.phase += g.phaseInc
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Len returns the tone length in samples
func (g *ToneGenerator) Len() int {
	return g.total
}

func (g *ToneGenerator) oscillate() float64 {
	switch g.wave {
	case waveSquare:
		if g.phase < 0.5 {
			return 1.0
		}
		return -1.0
	case waveTriangle:
		return 4*math.Abs(g.phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * g.phase)
	}
}

func (g *ToneGenerator) envelope() float64 {
	if g.attack > 0 && g.pos < g.attack {
		return float64(g.pos) / float64(g.attack)
	}
	releaseStart := g.total - g.release
	if g.release > 0 && g.pos >= releaseStart {
		return float64(g.total-g.pos) / float64(g.release)
	}
	return 1.0
}
