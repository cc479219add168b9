//go:build !ebiten

package gui

import "github.com/lixenwraith/pong/engine"

// Loader is a placeholder that fails every load in the headless build
type Loader struct{}

func NewLoader() Loader {
	return Loader{}
}

func (Loader) LoadTexture(string) (engine.Texture, error) {
	return nil, ErrUnavailable
}

// Run always reports that the GUI build tag is missing
func Run(Options) error {
	return ErrUnavailable
}
