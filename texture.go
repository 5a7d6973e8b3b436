package arcade

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Texture is a shared handle over one decoded image. Every Sprite sliced
// from the same image holds the same *Texture; the image stays alive as
// long as any holder does. Draw calls access the image without exclusive
// ownership — arcade assumes render calls never overlap in time
// (single game-loop goroutine, no locking).
type Texture struct {
	image *ebiten.Image
}

// NewTexture wraps an existing image in a Texture.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{image: img}
}

// LoadTexture reads and decodes the image file at path. Decode and read
// failures are ordinary errors — a missing or corrupt asset is an expected
// outcome, handled by the caller, not a panic.
func LoadTexture(path string) (*Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("arcade: load texture %q: %w", path, err)
	}
	return &Texture{image: img}, nil
}

// Image returns the underlying *ebiten.Image.
func (t *Texture) Image() *ebiten.Image {
	return t.image
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.image.Bounds().Dx()
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.image.Bounds().Dy()
}

// Size returns the texture dimensions as float64, matching the coordinate
// space used by Rect.
func (t *Texture) Size() (w, h float64) {
	b := t.image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
