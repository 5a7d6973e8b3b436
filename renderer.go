package arcade

import "github.com/hajimehoshi/ebiten/v2"

// Renderable is the capability of drawing oneself into a destination
// rectangle given a renderer. Sprite and AnimatedSprite implement it; so can
// any user type that composes them.
type Renderable interface {
	Render(r *Renderer, dst Rect)
}

// Renderer draws into a destination image. It is the single place where
// backend draw boilerplate lives — every Renderable ultimately funnels
// through Copy.
//
// A Renderer is a thin wrapper; creating one per frame around the screen
// image is fine.
type Renderer struct {
	target *ebiten.Image
}

// NewRenderer creates a Renderer that draws into target.
func NewRenderer(target *ebiten.Image) *Renderer {
	return &Renderer{target: target}
}

// Target returns the destination image.
func (r *Renderer) Target() *ebiten.Image {
	return r.target
}

// OutputSize returns the destination dimensions in pixels, as float64.
func (r *Renderer) OutputSize() (w, h float64) {
	b := r.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Copy draws the src region of tex into the dst rectangle, scaling as
// needed. Fractional src coordinates truncate at the backend boundary;
// dst keeps sub-pixel precision through the transform.
func (r *Renderer) Copy(tex *Texture, src, dst Rect) {
	sub := tex.image.SubImage(src.ImageRect()).(*ebiten.Image)
	sw, sh := float64(sub.Bounds().Dx()), float64(sub.Bounds().Dy())
	if sw == 0 || sh == 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width/sw, dst.Height/sh)
	op.GeoM.Translate(dst.X, dst.Y)
	r.target.DrawImage(sub, &op)
}

// CopySprite draws any Renderable into the dst rectangle. This is the
// generic helper: defined once over the interface, it works uniformly for
// Sprite, AnimatedSprite, and user types.
func (r *Renderer) CopySprite(s Renderable, dst Rect) {
	s.Render(r, dst)
}

// Clear fills the entire destination with the given color.
func (r *Renderer) Clear(c Color) {
	r.target.Fill(c.toRGBA())
}

// FillRect fills dst with a solid color by scaling the shared white pixel.
// Mostly useful for debug overlays and placeholder art.
func (r *Renderer) FillRect(dst Rect, c Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width, dst.Height)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.Scale(
		float32(c.R*c.A),
		float32(c.G*c.A),
		float32(c.B*c.A),
		float32(c.A),
	)
	r.target.DrawImage(WhitePixel, &op)
}
