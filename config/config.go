package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/parameter"
)

// ErrInvalid is wrapped by every validation failure of a config file
var ErrInvalid = errors.New("invalid config")

// File is the on-disk configuration, every section is optional
type File struct {
	Tuning  TuningConfig  `yaml:"tuning"`
	Assets  AssetsConfig  `yaml:"assets"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

type TuningConfig struct {
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpin   float64 `yaml:"paddle_spin"`
	BallAccel    float64 `yaml:"ball_accel"`
	PaddleMargin float64 `yaml:"paddle_margin"`
	Background   string  `yaml:"background"` // #rrggbb
}

type AssetsConfig struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
	Ball    string `yaml:"ball"`
}

type InputConfig struct {
	// Hold is the terminal held-key window
	Hold time.Duration `yaml:"hold"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *File {
	def := game.DefaultConfig()
	return &File{
		Tuning: TuningConfig{
			PaddleSpeed:  def.PaddleSpeed,
			BallSpeed:    def.BallSpeed,
			PaddleSpin:   def.PaddleSpin,
			BallAccel:    def.BallAccel,
			PaddleMargin: def.PaddleMargin,
			Background:   FormatColor(def.Background),
		},
		Assets: AssetsConfig{
			Player1: def.Assets.Player1,
			Player2: def.Assets.Player2,
			Ball:    def.Assets.Ball,
		},
		Input: InputConfig{
			Hold: parameter.KeyHoldWindow,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults, an empty path returns the defaults
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Keys absent from data keep their default values
func Parse(data []byte) (*File, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section, tuning is checked by game.Config.Validate
func (f *File) Validate() error {
	if _, err := f.Game(); err != nil {
		return err
	}
	if f.Input.Hold <= 0 {
		return fmt.Errorf("%w: input.hold must be positive, got %v", ErrInvalid, f.Input.Hold)
	}
	if f.Audio.Volume < 0 || f.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalid, f.Audio.Volume)
	}
	if _, ok := logLevels[strings.ToLower(f.Logging.Level)]; !ok {
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, f.Logging.Level)
	}
	return nil
}

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Game converts the tuning and asset sections into a game.Config
func (f *File) Game() (game.Config, error) {
	bg, err := ParseColor(f.Tuning.Background)
	if err != nil {
		return game.Config{}, err
	}
	cfg := game.Config{
		PaddleSpeed:  f.Tuning.PaddleSpeed,
		BallSpeed:    f.Tuning.BallSpeed,
		PaddleSpin:   f.Tuning.PaddleSpin,
		BallAccel:    f.Tuning.BallAccel,
		PaddleMargin: f.Tuning.PaddleMargin,
		Background:   bg,
		Assets: game.Assets{
			Player1: f.Assets.Player1,
			Player2: f.Assets.Player2,
			Ball:    f.Assets.Ball,
		},
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// ParseColor parses an opaque #rrggbb colour
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q is not #rrggbb", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalid, s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FormatColor renders c as #rrggbb, alpha is dropped
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
