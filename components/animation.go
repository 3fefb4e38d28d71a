package components

import (
	"github.com/automoto/songrunner/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Current          string
	Animations       map[string]*animations.Animation
}

// SetAnimation switches to the animation stored under key, restarting it.
// Switching to the current key is a no-op.
func (a *AnimationData) SetAnimation(key string) {
	if a.Current == key && a.CurrentAnimation != nil {
		return
	}
	anim, ok := a.Animations[key]
	if !ok {
		a.CurrentAnimation = nil
		a.Current = key
		return
	}
	a.CurrentAnimation = anim
	a.Current = key
	anim.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
