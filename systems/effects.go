package systems

import (
	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateEffects counts down flashes and removes entities whose auto-destroy
// timer ran out.
func UpdateEffects(w donburi.World, dtMs float64) {
	updateFlashEffects(w, dtMs)
	updateAutoDestroy(w, dtMs)
}

func updateFlashEffects(w donburi.World, dtMs float64) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.RemainingMs > 0 {
			flash.RemainingMs = max(0, flash.RemainingMs-dtMs)
		}
	})
}

func updateAutoDestroy(w donburi.World, dtMs float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(w, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if !ad.Armed {
			return
		}
		ad.RemainingMs -= dtMs
		if ad.RemainingMs <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		factory.RemoveObject(w, e)
	}
}
