// Package arcade is a small sprite and animation toolkit for [Ebitengine].
//
// Arcade provides the pieces a 2D game needs between "decoded image" and
// "pixels on screen": shared textures, sprites that reference a sub-region
// of a texture, time-driven frame animation, sprite-sheet slicing, scrolling
// backgrounds, and rectangle tweens (via [gween]).
//
// # Quick start
//
// Load an image, slice it, and animate it:
//
//	frames, err := arcade.LoadFrames(arcade.SheetDescr{
//		Path:        "assets/explosion.png",
//		TotalFrames: 17,
//		FramesWide:  5,
//		FramesHigh:  4,
//		FrameWidth:  96,
//		FrameHeight: 96,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	anim := arcade.NewAnimatedSpriteFPS(frames, 16)
//
// Each frame of your game loop, advance the clock and draw:
//
//	anim.AddTime(dt)
//	renderer := arcade.NewRenderer(screen)
//	renderer.CopySprite(anim, arcade.Rect{X: 100, Y: 100, Width: 96, Height: 96})
//
// # Rendering model
//
// A [Renderer] wraps a destination *ebiten.Image. Anything implementing
// [Renderable] — [Sprite], [AnimatedSprite], or your own types — can be
// drawn into a destination [Rect] with [Renderer.CopySprite]. All calls are
// immediate and single-threaded; arcade performs no locking and expects to
// be driven from one game-loop goroutine.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package arcade
