package systems

import (
	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateCollect collects every note overlapping the runner. It runs after
// UpdateNotes, so a note missed this tick can no longer be collected.
func UpdateCollect(w donburi.World) int {
	entry, ok := tags.Player.First(w)
	if !ok {
		return 0
	}
	playerObject := components.Object.Get(entry).Object

	check := playerObject.Check(0, 0, tags.ResolvNote)
	if check == nil {
		return 0
	}

	collected := 0
	for _, o := range check.ObjectsByTags(tags.ResolvNote) {
		if !overlaps(playerObject, o) {
			continue
		}
		if e, ok := o.Data.(*donburi.Entry); ok && Collect(w, e) {
			collected++
		}
	}
	return collected
}

// overlaps is the exact box test; Check only narrows by shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
