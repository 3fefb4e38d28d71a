package systems

import (
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePlayer applies the jump request, gravity and ground contact. The
// runner never moves horizontally; the world scrolls past it.
func UpdatePlayer(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if player.JumpRequested && physics.OnGround != nil {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.OnGround = nil
			player.Jumps++
			QueueSFX(w, cfg.SoundJump)
		}
		player.JumpRequested = false

		physics.SpeedY = min(physics.SpeedY+physics.Gravity, physics.MaxFallSpeed)
		resolveVerticalCollision(physics, obj.Object)
		obj.Update()
	})
}

// RequestJump asks the runner to jump on its next update. Ignored in the air.
func RequestJump(w donburi.World) {
	if entry, ok := tags.Player.First(w); ok {
		components.Player.Get(entry).JumpRequested = true
	}
}

// resolveVerticalCollision moves the object by its vertical speed, stopping
// on solid ground or ceilings. Check only narrows candidates by shared cells,
// so each solid is tested against the swept edge.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if solid.X >= object.X+object.W || solid.X+solid.W <= object.X {
			continue
		}
		if dy < 0 {
			ceiling := solid.Y + solid.H
			if ceiling <= object.Y && ceiling > object.Y+dy {
				physics.SpeedY = 0
				object.Y = ceiling
				return
			}
			continue
		}
		bottom := object.Y + object.H
		if solid.Y >= bottom-groundTolerance && solid.Y <= bottom+checkDistance {
			physics.OnGround = solid
			physics.SpeedY = 0
			object.Y = solid.Y - object.H
			return
		}
	}
	object.Y += dy
}

// groundTolerance lets a runner resting a hair inside the ground still land.
const groundTolerance = 0.5
