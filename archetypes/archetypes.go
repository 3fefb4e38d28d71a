package archetypes

import (
	"slices"

	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/tags"
	"github.com/yohamta/donburi"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Animation,
	)
	Note = newArchetype(
		tags.Note,
		components.Note,
		components.Object,
		components.AutoDestroy,
		components.Flash,
		components.Animation,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Run = newArchetype(
		components.Run,
		components.Clock,
		components.Report,
	)
	Audio = newArchetype(
		components.Audio,
		components.Duck,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
