package factory

import (
	"github.com/automoto/songrunner/archetypes"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// NoteSpec describes a note at the moment it is spawned.
type NoteSpec struct {
	Lane        int
	Frame       int
	X, Y        float64 // initial position, already shifted for lateness
	SpawnX      float64 // unshifted entry x
	ScheduledMs float64
	HitMs       float64
	Speed       float64 // px per second
}

func CreateNote(w donburi.World, spec NoteSpec) *donburi.Entry {
	note := archetypes.Note.Spawn(w)

	obj := resolv.NewObject(spec.X, spec.Y, cfg.Notes.Width, cfg.Notes.Height, tags.ResolvNote)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Notes.Width, cfg.Notes.Height))
	obj.Data = note
	components.Object.SetValue(note, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Note.SetValue(note, components.NoteData{
		Lane:        spec.Lane,
		Frame:       spec.Frame,
		SpawnX:      spec.SpawnX,
		ScheduledMs: spec.ScheduledMs,
		HitMs:       spec.HitMs,
		SpeedX:      -spec.Speed / 1000,
		State:       components.NotePending,
	})

	// AutoDestroy and Flash stay attached for the note's lifetime; they are
	// armed on miss.
	components.Flash.SetValue(note, components.FlashData{R: 1, G: 1, B: 1})

	components.Animation.SetValue(note, newAnimationData(cfg.AnimNote))
	components.Animation.Get(note).SetAnimation(cfg.AnimNote)

	return note
}
