package factory

import (
	"github.com/automoto/songrunner/archetypes"
	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateGround creates a solid ground block the runner stands on.
func CreateGround(w donburi.World, x, y, width, height float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return ground
}
