package game

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/vmath"
)

const (
	testWidth  = 640.0
	testHeight = 480.0

	paddleW, paddleH = 16, 64
	ballW, ballH     = 16, 16
)

type fakeTexture struct {
	name string
	w, h int
}

func (t *fakeTexture) Width() int  { return t.w }
func (t *fakeTexture) Height() int { return t.h }

// fakeLoader serves textures by path and fails for paths listed in fail
type fakeLoader struct {
	textures map[string]*fakeTexture
	fail     map[string]error
	loaded   []string
}

func newFakeLoader() *fakeLoader {
	cfg := DefaultConfig()
	return &fakeLoader{
		textures: map[string]*fakeTexture{
			cfg.Assets.Player1: {name: "player1", w: paddleW, h: paddleH},
			cfg.Assets.Player2: {name: "player2", w: paddleW, h: paddleH},
			cfg.Assets.Ball:    {name: "ball", w: ballW, h: ballH},
		},
		fail: map[string]error{},
	}
}

func (l *fakeLoader) LoadTexture(path string) (engine.Texture, error) {
	l.loaded = append(l.loaded, path)
	if err, ok := l.fail[path]; ok {
		return nil, err
	}
	tex, ok := l.textures[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return tex, nil
}

// fakeContext holds a fixed key set and records quit requests
type fakeContext struct {
	held     map[engine.Key]bool
	quitReqs int
}

func newFakeContext(keys ...engine.Key) *fakeContext {
	ctx := &fakeContext{held: map[engine.Key]bool{}}
	for _, k := range keys {
		ctx.held[k] = true
	}
	return ctx
}

func (c *fakeContext) IsKeyHeld(k engine.Key) bool { return c.held[k] }
func (c *fakeContext) RequestQuit()                { c.quitReqs++ }

type drawCall struct {
	texture engine.Texture
	pos     vmath.Vec2
}

type fakeRenderer struct {
	clears  []color.RGBA
	calls   []drawCall
	failOn  int // 1-based DrawSprite call that fails, 0 never
	failErr error
}

func (r *fakeRenderer) Clear(c color.RGBA) { r.clears = append(r.clears, c) }

func (r *fakeRenderer) DrawSprite(t engine.Texture, pos vmath.Vec2) error {
	r.calls = append(r.calls, drawCall{texture: t, pos: pos})
	if r.failOn == len(r.calls) {
		return r.failErr
	}
	return nil
}

func newTestState(t *testing.T) *State {
	t.Helper()
	s, err := New(newFakeLoader(), testWidth, testHeight, DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

// parkPaddles moves both paddles far off the ball's path
func parkPaddles(s *State) {
	s.Player1.Position.Y = -10000
	s.Player2.Position.Y = -10000
}

var errBoom = errors.New("boom")
