package arcade

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a Rect simultaneously.
// Create one via the convenience constructors (TweenMove, TweenResize,
// TweenRect) and call Update(dt) each frame.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Once every tween has finished, Done is set and further calls are
// no-ops.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenMove creates a TweenGroup that animates rect.X and rect.Y to the
// given target position over the specified duration using the easing
// function.
func TweenMove(rect *Rect, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(rect.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(rect.Y), float32(toY), duration, fn)
	g.fields[0] = &rect.X
	g.fields[1] = &rect.Y
	return g
}

// TweenResize creates a TweenGroup that animates rect.Width and rect.Height
// to the given target size over the specified duration using the easing
// function.
func TweenResize(rect *Rect, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(rect.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(rect.Height), float32(toH), duration, fn)
	g.fields[0] = &rect.Width
	g.fields[1] = &rect.Height
	return g
}

// TweenRect creates a TweenGroup that animates all four fields of rect to
// the target rectangle over the specified duration.
func TweenRect(rect *Rect, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(rect.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(rect.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(rect.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(rect.Height), float32(to.Height), duration, fn)
	g.fields[0] = &rect.X
	g.fields[1] = &rect.Y
	g.fields[2] = &rect.Width
	g.fields[3] = &rect.Height
	return g
}
