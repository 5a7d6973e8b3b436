package arcade

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSCounter measures the frame rate of the caller's loop from the dt
// values it is fed, independent of what the backend reports. Feed it the
// same dt you pass to AddTime.
type FPSCounter struct {
	// Interval is the measurement window in seconds. Zero means 1 second.
	Interval float64

	frames int
	acc    float64
	rate   float64
}

// Tick records one frame of dt seconds. The published rate refreshes once
// per Interval.
func (c *FPSCounter) Tick(dt float64) {
	c.frames++
	c.acc += dt

	interval := c.Interval
	if interval == 0 {
		interval = 1
	}
	if c.acc >= interval {
		c.rate = float64(c.frames) / c.acc
		c.frames = 0
		c.acc = 0
	}
}

// FPS returns the most recently measured rate. Zero until the first
// interval completes.
func (c *FPSCounter) FPS() float64 {
	return c.rate
}

// Draw overlays the current figure in the renderer's top-left corner.
func (c *FPSCounter) Draw(r *Renderer) {
	ebitenutil.DebugPrint(r.target, fmt.Sprintf("FPS: %.1f", c.rate))
}
