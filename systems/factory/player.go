package factory

import (
	"github.com/automoto/songrunner/archetypes"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the runner with its feet at (x, feetY).
func CreatePlayer(w donburi.World, x, feetY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, feetY-height, width, height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})

	components.Animation.SetValue(player, newAnimationData(cfg.AnimRun, cfg.AnimJump))
	components.Animation.Get(player).SetAnimation(cfg.AnimRun)

	return player
}
