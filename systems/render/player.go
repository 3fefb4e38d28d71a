package render

import (
	"math"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	strideSwing = 10.0 // px each leg swings at full stride
	headRatio   = 0.18
)

// DrawPlayer renders the runner as a body, head and legs whose stride
// follows the run animation. The look comes from the part's player sprite.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	o := components.Object.Get(entry)
	if o.Object == nil {
		return
	}
	anim := components.Animation.Get(entry)

	look := cfg.RunnerLookFor("")
	if level, ok := components.Level.First(e.World); ok {
		look = cfg.RunnerLookFor(components.Level.Get(level).Part.PlayerSprite)
	}
	c := look.Body
	x, y, w, h := float32(o.X), float32(o.Y), float32(o.W), float32(o.H)

	head := h * headRatio
	legs := h * 0.3
	body := h - head - legs

	if look.Square {
		vector.FillRect(screen, x+w/2-head/2, y, head, head, c, false)
		vector.FillRect(screen, x+w*0.1, y+head, w*0.8, body, c, false)
		vector.FillRect(screen, x+w/2-head/4, y+head/3, head/2, head/6, look.Accent, false)
	} else {
		vector.FillCircle(screen, x+w/2, y+head/2, head/2, c, true)
		vector.FillRect(screen, x+w*0.2, y+head, w*0.6, body, c, false)
	}
	if look.Hat {
		vector.FillRect(screen, x+w/2-head/2, y-head/4, head, head/4, look.Accent, false)
	}

	swing := float32(0)
	if anim.CurrentAnimation != nil {
		phase := anim.CurrentAnimation.Progress() * 2 * math.Pi
		swing = float32(math.Sin(phase) * strideSwing)
		if anim.Current == cfg.AnimJump {
			swing = strideSwing / 2
		}
	}
	hipX := x + w/2
	hipY := y + head + body
	vector.StrokeLine(screen, hipX, hipY, hipX+swing, y+h, 6, look.Accent, true)
	vector.StrokeLine(screen, hipX, hipY, hipX-swing, y+h, 6, look.Accent, true)
}
