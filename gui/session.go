// Package gui runs the game in a desktop window through ebiten.
//
// The window build needs the 'ebiten' build tag; without it Run and the
// texture loader report ErrUnavailable. Session holds the backend-neutral
// part of the frame loop so it can be exercised without a window.
package gui

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pong/engine"
)

// ErrUnavailable is returned by the headless build
var ErrUnavailable = errors.New("gui requires building with the 'ebiten' tag")

// ErrStopped ends the loop after a quit request, ebiten maps it to a clean exit
var ErrStopped = errors.New("game stopped")

// Options configures a windowed run
type Options struct {
	Title         string
	Width, Height int
	Game          engine.Game

	// OnUpdate runs after every successful Update, before Draw
	OnUpdate func()
}

// Session adapts an engine.Game to ebiten's update/draw split
// ebiten's Draw cannot fail, so a draw error is latched and returned by the next Tick
type Session struct {
	keys     engine.KeyState
	game     engine.Game
	onUpdate func()

	quit    bool
	drawErr error
	ticks   uint64
}

var _ engine.Context = (*Session)(nil)

// NewSession creates a session polling keys for g
func NewSession(keys engine.KeyState, g engine.Game, onUpdate func()) *Session {
	return &Session{
		keys:     keys,
		game:     g,
		onUpdate: onUpdate,
	}
}

func (s *Session) IsKeyHeld(k engine.Key) bool {
	return s.keys.IsKeyHeld(k)
}

func (s *Session) RequestQuit() {
	s.quit = true
}

// Quit reports whether the game asked to stop
func (s *Session) Quit() bool {
	return s.quit
}

// Ticks returns the number of updates run
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Tick runs one update, escape is the state of the quit key
// A quit requested by the game lets that tick's Frame draw, the following Tick returns ErrStopped
func (s *Session) Tick(escape bool) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	if s.quit || escape {
		s.quit = true
		return ErrStopped
	}

	s.ticks++
	if err := s.game.Update(s); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if s.onUpdate != nil {
		s.onUpdate()
	}
	return nil
}

// Frame draws the game, errors surface on the next Tick
func (s *Session) Frame(r engine.Renderer) {
	if s.drawErr != nil {
		return
	}
	if err := s.game.Draw(r); err != nil {
		s.drawErr = fmt.Errorf("draw: %w", err)
	}
}
