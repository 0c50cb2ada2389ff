package physics

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator loops through a fixed number of frames, one pass per period.
type Animator struct {
	tween   *gween.Tween
	frames  int
	frame   int
	stopped bool
}

// NewAnimator creates a looping animation of frames frames lasting period
// seconds per loop.
func NewAnimator(period float64, frames int) *Animator {
	if frames < 1 {
		frames = 1
	}
	return &Animator{
		tween:  gween.New(0, float32(frames), float32(period), ease.Linear),
		frames: frames,
	}
}

// Update advances the animation by dt seconds.
func (a *Animator) Update(dt float64) {
	if a.stopped {
		return
	}
	current, finished := a.tween.Update(float32(dt))
	if finished {
		a.tween.Reset()
		current = 0
	}
	a.frame = int(current) % a.frames
}

// Stop freezes the animation on its current frame.
func (a *Animator) Stop() {
	a.stopped = true
}

// Stopped reports whether Stop was called.
func (a *Animator) Stopped() bool {
	return a.stopped
}

// Frame returns the current frame index.
func (a *Animator) Frame() int {
	return a.frame
}
