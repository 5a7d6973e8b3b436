package arcade

import "math"

// Background is a horizontally scrolling, endlessly tiling backdrop. Pos is
// the logical scroll offset in sprite pixels; it depends only on time and
// the image dimensions, never on the screen size, so resizing the window
// does not jump the scroll.
type Background struct {
	// Pos is the current scroll offset in sprite pixels.
	Pos float64
	// Vel is the scroll speed in sprite pixels per second.
	Vel float64
	// Sprite is the tile image. Typically a full-texture sprite, but any
	// sub-region works.
	Sprite Sprite
}

// Update advances the scroll offset by Vel*dt and wraps it into
// [0, spriteWidth) so Pos never grows without bound.
func (b *Background) Update(dt float64) {
	w, _ := b.Sprite.Size()
	b.Pos += b.Vel * dt
	if w > 0 {
		b.Pos = math.Mod(b.Pos, w)
		if b.Pos < 0 {
			b.Pos += w
		}
	}
}

// Render draws as many copies of the sprite as needed to cover the
// renderer's full width. The sprite is scaled so its height matches the
// output height, preserving aspect ratio.
func (b *Background) Render(r *Renderer) {
	sw, sh := b.Sprite.Size()
	if sw <= 0 || sh <= 0 {
		return
	}
	outW, outH := r.OutputSize()
	scale := outH / sh
	if scale <= 0 {
		return
	}

	left := -b.Pos * scale
	for left < outW {
		r.CopySprite(b.Sprite, Rect{
			X:      left,
			Y:      0,
			Width:  sw * scale,
			Height: sh * scale,
		})
		left += sw * scale
	}
}

// BgSet is a parallax stack of backgrounds. Back and Middle render behind
// the scene, Front renders over it. Nil layers are skipped.
type BgSet struct {
	Back   *Background
	Middle *Background
	Front  *Background
}

// Update advances all non-nil layers.
func (s *BgSet) Update(dt float64) {
	for _, b := range []*Background{s.Back, s.Middle, s.Front} {
		if b != nil {
			b.Update(dt)
		}
	}
}

// Render draws the Back and Middle layers. Call before rendering scene
// content.
func (s *BgSet) Render(r *Renderer) {
	if s.Back != nil {
		s.Back.Render(r)
	}
	if s.Middle != nil {
		s.Middle.Render(r)
	}
}

// RenderFront draws the Front layer. Call after rendering scene content.
func (s *BgSet) RenderFront(r *Renderer) {
	if s.Front != nil {
		s.Front.Render(r)
	}
}
