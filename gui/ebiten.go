//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/vmath"
)

// Texture wraps an ebiten image
type Texture struct {
	img *ebiten.Image
}

var _ engine.Texture = (*Texture)(nil)

func (t *Texture) Width() int  { return t.img.Bounds().Dx() }
func (t *Texture) Height() int { return t.img.Bounds().Dy() }

// Loader reads image files into GPU textures
type Loader struct{}

var _ engine.AssetLoader = Loader{}

func NewLoader() Loader {
	return Loader{}
}

func (Loader) LoadTexture(path string) (engine.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &Texture{img: img}, nil
}

// Renderer draws onto the frame image ebiten hands to Draw
type Renderer struct {
	screen *ebiten.Image
}

var _ engine.Renderer = (*Renderer)(nil)

func (r *Renderer) Clear(c color.RGBA) {
	r.screen.Fill(c)
}

func (r *Renderer) DrawSprite(t engine.Texture, pos vmath.Vec2) error {
	tex, ok := t.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", engine.ErrForeignTexture, t)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	r.screen.DrawImage(tex.img, op)
	return nil
}

// keyboard maps logical keys onto ebiten key codes: W/S for player 1, arrows for player 2
type keyboard map[engine.Key][]ebiten.Key

func defaultKeyboard() keyboard {
	return keyboard{
		engine.KeyPlayer1Up:   {ebiten.KeyW},
		engine.KeyPlayer1Down: {ebiten.KeyS},
		engine.KeyPlayer2Up:   {ebiten.KeyArrowUp},
		engine.KeyPlayer2Down: {ebiten.KeyArrowDown},
	}
}

func (kb keyboard) IsKeyHeld(k engine.Key) bool {
	for _, key := range kb[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// adapter implements ebiten.Game on top of a Session
type adapter struct {
	session       *Session
	width, height int
}

func (a *adapter) Update() error {
	err := a.session.Tick(ebiten.IsKeyPressed(ebiten.KeyEscape))
	if errors.Is(err, ErrStopped) {
		return ebiten.Termination
	}
	return err
}

func (a *adapter) Draw(screen *ebiten.Image) {
	a.session.Frame(&Renderer{screen: screen})
}

// Layout keeps the logical playfield fixed, ebiten scales it to the window
func (a *adapter) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until the game quits or fails
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)

	a := &adapter{
		session: NewSession(defaultKeyboard(), opts.Game, opts.OnUpdate),
		width:   opts.Width,
		height:  opts.Height,
	}
	return ebiten.RunGame(a)
}
