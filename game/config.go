package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid game config")

// Assets names the texture files loaded at construction
type Assets struct {
	Player1 string
	Player2 string
	Ball    string
}

// Config holds the tuning values of a match, all speeds in world units per tick
type Config struct {
	PaddleSpeed  float64
	BallSpeed    float64
	PaddleSpin   float64
	BallAccel    float64
	PaddleMargin float64
	Background   color.RGBA
	Assets       Assets
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		PaddleSpeed:  parameter.PaddleSpeed,
		BallSpeed:    parameter.BallSpeed,
		PaddleSpin:   parameter.PaddleSpin,
		BallAccel:    parameter.BallAccel,
		PaddleMargin: parameter.PaddleMargin,
		Background:   parameter.BackgroundColor,
		Assets: Assets{
			Player1: parameter.Player1TexturePath,
			Player2: parameter.Player2TexturePath,
			Ball:    parameter.BallTexturePath,
		},
	}
}

// Validate rejects non-finite or negative tuning and missing asset paths
// Zero is allowed everywhere, a zero ball speed simply never leaves the centre
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"paddle speed", c.PaddleSpeed},
		{"ball speed", c.BallSpeed},
		{"paddle spin", c.PaddleSpin},
		{"ball acceleration", c.BallAccel},
		{"paddle margin", c.PaddleMargin},
	}
	for _, f := range fields {
		if !vmath.IsFinite(f.value) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	assets := []struct {
		name string
		path string
	}{
		{"player1", c.Assets.Player1},
		{"player2", c.Assets.Player2},
		{"ball", c.Assets.Ball},
	}
	for _, a := range assets {
		if a.path == "" {
			return fmt.Errorf("%w: %s texture path is empty", ErrInvalidConfig, a.name)
		}
	}
	return nil
}
