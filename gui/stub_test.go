//go:build !ebiten

package gui

import (
	"errors"
	"testing"
)

func TestHeadlessBuild(t *testing.T) {
	if _, err := NewLoader().LoadTexture("./resources/ball.png"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("LoadTexture() = %v, want ErrUnavailable", err)
	}
	if err := Run(Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() = %v, want ErrUnavailable", err)
	}
}
