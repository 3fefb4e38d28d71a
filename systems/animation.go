package systems

import (
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/tags"
	"github.com/yohamta/donburi"
)

// UpdateAnimations picks the runner's stride or jump pose and steps every
// entity's current animation by one tick.
func UpdateAnimations(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if components.Physics.Get(e).OnGround != nil {
			anim.SetAnimation(cfg.AnimRun)
		} else {
			anim.SetAnimation(cfg.AnimJump)
		}
	})

	components.Animation.Each(w, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
