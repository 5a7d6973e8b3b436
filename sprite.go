package arcade

// Sprite references a rectangular sub-region of a Texture, renderable as a
// unit. Value type (two words plus a rect) — copy freely; copies share the
// underlying texture.
type Sprite struct {
	tex *Texture
	src Rect
}

// NewSprite creates a Sprite spanning the full texture, source origin (0,0).
func NewSprite(tex *Texture) Sprite {
	w, h := tex.Size()
	return Sprite{
		tex: tex,
		src: Rect{Width: w, Height: h},
	}
}

// LoadSprite loads the image at path and wraps it in a full-texture Sprite.
// A missing or undecodable file is an ordinary error, not a panic.
func LoadSprite(path string) (Sprite, error) {
	tex, err := LoadTexture(path)
	if err != nil {
		return Sprite{}, err
	}
	return NewSprite(tex), nil
}

// Region returns a new Sprite narrowed to rel, interpreted as offsets within
// the current source rectangle: the result's source rect is rel shifted by
// the current source origin, keeping rel's own width and height. The new
// Sprite shares the same texture.
//
// The second return value is false when the shifted rect is not fully
// contained in the current source rect. Out-of-bounds slices are rejected,
// never clamped — this is how a sprite sheet is sliced into named
// sub-sprites safely.
func (s Sprite) Region(rel Rect) (Sprite, bool) {
	abs := Rect{
		X:      s.src.X + rel.X,
		Y:      s.src.Y + rel.Y,
		Width:  rel.Width,
		Height: rel.Height,
	}
	if !s.src.Contains(abs) {
		return Sprite{}, false
	}
	return Sprite{tex: s.tex, src: abs}, true
}

// Size returns the dimensions of the current source rectangle.
func (s Sprite) Size() (w, h float64) {
	return s.src.Width, s.src.Height
}

// Render draws the sprite's source region into dst via the renderer.
func (s Sprite) Render(r *Renderer, dst Rect) {
	r.Copy(s.tex, s.src, dst)
}
