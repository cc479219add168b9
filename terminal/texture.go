package terminal

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/lixenwraith/pong/engine"
)

// ErrEmptyImage is returned for images with no area
var ErrEmptyImage = errors.New("image has no pixels")

// Texture is a sprite reduced to its size and average colour
type Texture struct {
	width, height int
	color         color.RGBA
}

var _ engine.Texture = (*Texture)(nil)

// NewTexture builds a solid texture, used by tests and generated sprites
func NewTexture(width, height int, c color.RGBA) *Texture {
	return &Texture{width: width, height: height, color: c}
}

func (t *Texture) Width() int        { return t.width }
func (t *Texture) Height() int       { return t.height }
func (t *Texture) Color() color.RGBA { return t.color }

// Loader decodes PNG files into terminal textures
type Loader struct{}

var _ engine.AssetLoader = Loader{}

func NewLoader() Loader {
	return Loader{}
}

// LoadTexture reads and decodes path
func (Loader) LoadTexture(path string) (engine.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return TextureFromImage(img)
}

// TextureFromImage averages the visible pixels of img
// Fully transparent pixels are ignored, a fully transparent image averages to transparent black
func TextureFromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			nc := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if nc.A == 0 {
				continue
			}
			r += uint64(nc.R)
			g += uint64(nc.G)
			bl += uint64(nc.B)
			n++
		}
	}

	avg := color.RGBA{}
	if n > 0 {
		avg = color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 255}
	}
	return &Texture{width: b.Dx(), height: b.Dy(), color: avg}, nil
}
