package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/vmath"
)

// Renderer paints world-space sprites onto a tcell screen
// World coordinates are scaled to the current screen size on every Clear
type Renderer struct {
	screen         tcell.Screen
	worldW         float64
	worldH         float64
	cols, rows     int
	scaleX, scaleY float64
}

var (
	_ engine.Renderer  = (*Renderer)(nil)
	_ engine.Presenter = (*Renderer)(nil)
)

// NewRenderer creates a renderer for a world of worldW x worldH units
func NewRenderer(screen tcell.Screen, worldW, worldH float64) *Renderer {
	r := &Renderer{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
	r.resize()
	return r
}

func (r *Renderer) resize() {
	r.cols, r.rows = r.screen.Size()
	if r.worldW > 0 {
		r.scaleX = float64(r.cols) / r.worldW
	}
	if r.worldH > 0 {
		r.scaleY = float64(r.rows) / r.worldH
	}
}

// Clear fills the whole screen with c
func (r *Renderer) Clear(c color.RGBA) {
	r.resize()
	r.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

// DrawSprite paints every cell the sprite's scaled bounds touch, clipped to the screen
// Sprites always cover at least one cell so small objects never vanish
func (r *Renderer) DrawSprite(t engine.Texture, pos vmath.Vec2) error {
	tex, ok := t.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", engine.ErrForeignTexture, t)
	}

	x0, y0, x1, y1 := r.CellSpan(vmath.NewRect(pos.X, pos.Y, float64(tex.width), float64(tex.height)))
	style := tcell.StyleDefault.Background(toTcell(tex.color))

	for y := max(y0, 0); y < min(y1, r.rows); y++ {
		for x := max(x0, 0); x < min(x1, r.cols); x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	return nil
}

// CellSpan maps a world rectangle to the half-open cell range [x0, x1) x [y0, y1)
func (r *Renderer) CellSpan(rect vmath.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(rect.X * r.scaleX))
	y0 = int(math.Floor(rect.Y * r.scaleY))
	x1 = int(math.Ceil(rect.Right() * r.scaleX))
	y1 = int(math.Ceil(rect.Bottom() * r.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Present flushes the frame to the terminal
func (r *Renderer) Present() {
	r.screen.Show()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
