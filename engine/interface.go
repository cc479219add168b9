package engine

import (
	"errors"
	"image/color"

	"github.com/lixenwraith/pong/vmath"
)

// ErrForeignTexture is returned when a renderer is handed a texture loaded by another backend
var ErrForeignTexture = errors.New("texture not created by this renderer")

// Texture is an opaque sprite handle with a fixed pixel size
type Texture interface {
	Width() int
	Height() int
}

// AssetLoader loads textures from disk
type AssetLoader interface {
	LoadTexture(path string) (Texture, error)
}

// KeyState answers whether a logical key is currently held
type KeyState interface {
	IsKeyHeld(k Key) bool
}

// Context is what a game sees during Update
// RequestQuit is advisory: the driver stops scheduling ticks, the current tick runs to completion
type Context interface {
	KeyState
	RequestQuit()
}

// Renderer draws a single frame
type Renderer interface {
	Clear(c color.RGBA)
	DrawSprite(t Texture, pos vmath.Vec2) error
}

// Presenter is implemented by renderers that buffer a frame and need an explicit flush
type Presenter interface {
	Present()
}

// Game is driven once per tick: Update, then Draw
type Game interface {
	Update(ctx Context) error
	Draw(r Renderer) error
}
