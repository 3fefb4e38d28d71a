package render

import (
	"image/color"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const notePulse = 0.12 // radius swing as a fraction of the note size

// DrawNotes renders every live note. Missed notes keep their miss tint and
// fade out over the grace period.
func DrawNotes(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	tags.Note.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if o.Object == nil || o.X > width || o.X+o.W < 0 {
			return
		}
		note := components.Note.Get(entry)

		c := noteColor(note.Frame)
		if flash := components.Flash.Get(entry); flash.RemainingMs > 0 {
			c = tint(c, flash.R, flash.G, flash.B)
		}
		if note.State == components.NoteMissed {
			ad := components.AutoDestroy.Get(entry)
			c.A = uint8(255 * clamp01(ad.RemainingMs/cfg.Notes.MissGraceMs))
		}

		radius := o.W / 2
		if anim := components.Animation.Get(entry).CurrentAnimation; anim != nil && note.Pending() {
			radius *= 1 - notePulse + notePulse*anim.Progress()
		}

		cx := float32(o.X + o.W/2)
		cy := float32(o.Y + o.H/2)
		vector.FillCircle(screen, cx, cy, float32(radius), premultiply(c), true)
		vector.StrokeCircle(screen, cx, cy, float32(radius), 2, premultiply(color.RGBA{A: c.A}), true)
	})
}

func noteColor(frame int) color.RGBA {
	palette := cfg.HUD.NoteColors
	if len(palette) == 0 {
		return cfg.White
	}
	if frame < 0 {
		frame = -frame
	}
	return palette[frame%len(palette)]
}

func tint(c color.RGBA, r, g, b float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * r),
		G: uint8(float32(c.G) * g),
		B: uint8(float32(c.B) * b),
		A: c.A,
	}
}

// premultiply converts a straight-alpha color to the premultiplied form
// color.RGBA requires.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
