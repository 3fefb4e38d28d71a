// Package animations steps frame indices at a fixed tick rate. It holds no
// images; renderers map the current frame to whatever they draw.
package animations

import "github.com/automoto/songrunner/config"

type Animation struct {
	First      int
	Last       int
	Step       int     // how many indices do we move per frame
	SpeedInTps float32 // how many ticks before next frame
	Looped     bool    // set once the first cycle completes

	frameCounter float32
	frame        int
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// FromDef builds an animation from a config definition.
func FromDef(def config.AnimationDef) *Animation {
	return NewAnimation(def.First, def.Last, def.Step, def.Speed)
}

// Update advances one tick.
func (a *Animation) Update() {
	a.frameCounter--
	if a.frameCounter >= 0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress returns the position of the current frame within the range, 0..1.
func (a *Animation) Progress() float64 {
	if a.Last <= a.First {
		return 0
	}
	return float64(a.frame-a.First) / float64(a.Last-a.First)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}
