package arcade

import "math"

// AnimatedSprite displays an ordered sequence of Sprites as a single
// animated unit. The displayed frame is a pure function of the accumulated
// logical clock: floor(elapsed/frameDelay) mod frameCount. There are no
// discrete states — AddTime advances (or rewinds) the clock, and the delay
// setters change the period without resetting it.
//
// The frame list must be non-empty; arcade does not validate this, matching
// the unchecked invariant on frame delay (see Render).
type AnimatedSprite struct {
	// frames is shared between clones: Clone copies timing state but not
	// the slice contents.
	frames     []Sprite
	frameDelay float64
	elapsed    float64
}

// NewAnimatedSprite creates an animation over frames with the given delay
// in seconds per frame. The clock starts at zero. The frames slice is kept
// by reference — callers must not mutate it afterwards.
func NewAnimatedSprite(frames []Sprite, frameDelay float64) *AnimatedSprite {
	return &AnimatedSprite{
		frames:     frames,
		frameDelay: frameDelay,
	}
}

// NewAnimatedSpriteFPS creates an animation running at fps frames per
// second (frameDelay = 1/fps). Panics on fps == 0: a zero rate is caller
// misuse, not a runtime condition.
func NewAnimatedSpriteFPS(frames []Sprite, fps float64) *AnimatedSprite {
	if fps == 0 {
		panic("arcade: animated sprite fps must not be zero")
	}
	return NewAnimatedSprite(frames, 1/fps)
}

// FrameCount returns the number of frames in the sequence.
func (a *AnimatedSprite) FrameCount() int {
	return len(a.frames)
}

// FrameDelay returns the current seconds-per-frame delay.
func (a *AnimatedSprite) FrameDelay() float64 {
	return a.frameDelay
}

// CurrentTime returns the accumulated logical clock in seconds.
func (a *AnimatedSprite) CurrentTime() float64 {
	return a.elapsed
}

// SetFrameDelay replaces the delay unconditionally. A negative delay is
// allowed and inverts the frame-advance direction on subsequent AddTime
// calls; a zero delay makes Render undefined.
func (a *AnimatedSprite) SetFrameDelay(delay float64) {
	a.frameDelay = delay
}

// SetFPS sets the delay from a frames-per-second rate. Panics on fps == 0,
// same policy as NewAnimatedSpriteFPS.
func (a *AnimatedSprite) SetFPS(fps float64) {
	if fps == 0 {
		panic("arcade: animated sprite fps must not be zero")
	}
	a.frameDelay = 1 / fps
}

// AddTime advances the logical clock by dt seconds. dt may be negative to
// rewind; rewinding past zero clamps the clock to the start of the last
// frame, (frameCount-1)*frameDelay, so a fast rewind lands on the final
// frame rather than wrapping through the sequence.
func (a *AnimatedSprite) AddTime(dt float64) {
	a.elapsed += dt
	if a.elapsed < 0 {
		a.elapsed = float64(len(a.frames)-1) * a.frameDelay
	}
}

// frameIndex derives the displayed frame from the clock.
func (a *AnimatedSprite) frameIndex() int {
	return int(math.Floor(a.elapsed/a.frameDelay)) % len(a.frames)
}

// Render draws the current frame into dst via the renderer.
//
// Behavior is undefined when frameDelay is zero (the frame-index division
// has no meaningful result) or when the frame list is empty. Neither is
// validated here — both are caller invariants, kept unchecked so that the
// hot path stays a division, a floor, and a modulo.
func (a *AnimatedSprite) Render(r *Renderer, dst Rect) {
	a.frames[a.frameIndex()].Render(r, dst)
}

// Clone duplicates the timing state. The frame list is shared, not copied:
// clones observe the same frames without duplicating texture references.
func (a *AnimatedSprite) Clone() *AnimatedSprite {
	c := *a
	return &c
}
