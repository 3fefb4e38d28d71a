package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the frame rate and
// run clock. Enabled with the debug flag.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitbox {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvNote) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if runEntry, ok := components.Run.First(e.World); ok {
		run := components.Run.Get(runEntry)
		msg += fmt.Sprintf("\nclock %.0fms  spawned %d  judged %d", components.Clock.Get(runEntry).Now(), run.Spawned, run.Judged())
	}
	ebitenutil.DebugPrintAt(screen, msg, int(cfg.HUD.Margin), screen.Bounds().Dy()-48)
}
