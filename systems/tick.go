package systems

import (
	"github.com/automoto/songrunner/events"
	"github.com/yohamta/donburi"
)

// Tick runs one gameplay frame of dtMs. Within a frame notes move and are
// judged for misses before they are checked against the runner.
func Tick(w donburi.World, dtMs float64) {
	dt := UpdateClock(w, dtMs)
	if dt == 0 {
		return
	}
	UpdatePlayer(w)
	UpdateNotes(w)
	UpdateCollect(w)
	events.Flush(w)
	UpdateDuck(w, dt)
	UpdateEffects(w, dt)
	UpdateAnimations(w)
	UpdateScroll(w)
}
