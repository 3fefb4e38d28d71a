package systems

import (
	"math"

	"github.com/automoto/songrunner/components"
	"github.com/yohamta/donburi"
)

// UpdateScroll advances the parallax offsets of the level's sky and ground
// layers. Offsets wrap at the screen width.
func UpdateScroll(w donburi.World) {
	entry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	width := float64(level.ScreenWidth)
	if width <= 0 {
		return
	}
	level.SkyOffset = math.Mod(level.SkyOffset+level.Song.Level.SkyScroll, width)
	level.GroundOffset = math.Mod(level.GroundOffset+level.Song.Level.GroundScroll, width)
}
