package systems

import (
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/automoto/songrunner/systems/factory"
	"github.com/automoto/songrunner/tags"
	"github.com/yohamta/donburi"
)

// UpdateNotes moves pending notes to where the run clock says they are and
// judges a note missed once it has passed the runner or left the screen.
// Judged notes no longer move.
func UpdateNotes(w donburi.World) {
	now, ok := RunNow(w)
	if !ok {
		return
	}
	hitX, hasPlayer := playerX(w)

	var missed []*donburi.Entry
	tags.Note.Each(w, func(e *donburi.Entry) {
		note := components.Note.Get(e)
		if !note.Pending() {
			return
		}
		obj := components.Object.Get(e)
		obj.X = note.SpawnX + note.SpeedX*max(0, now-note.ScheduledMs)
		obj.Update()

		if obj.X < cfg.Notes.OffscreenX || (hasPlayer && obj.X < hitX) {
			missed = append(missed, e)
		}
	})

	for _, e := range missed {
		judgeMiss(w, e, now)
	}
}

// Collect judges a pending note as hit and disposes of it. On a note that is
// already judged, or already gone, it does nothing and returns false.
func Collect(w donburi.World, e *donburi.Entry) bool {
	if !e.Valid() || !e.HasComponent(components.Note) {
		return false
	}
	note := components.Note.Get(e)
	if !note.Pending() {
		return false
	}
	now, _ := RunNow(w)
	note.State = components.NoteHit
	note.JudgedMs = now
	events.NoteJudged.Publish(w, judgmentEvent(note, messages.Hit))

	factory.RemoveObject(w, e)
	return true
}

// judgeMiss marks a pending note missed and arms its disposal after the grace
// period. The note stays visible until then.
func judgeMiss(w donburi.World, e *donburi.Entry, now float64) bool {
	note := components.Note.Get(e)
	if !note.Pending() {
		return false
	}
	note.State = components.NoteMissed
	note.JudgedMs = now
	events.NoteJudged.Publish(w, judgmentEvent(note, messages.Miss))

	components.AutoDestroy.SetValue(e, components.AutoDestroyData{
		Armed:       true,
		RemainingMs: cfg.Notes.MissGraceMs,
	})
	flash := components.Flash.Get(e)
	flash.RemainingMs = cfg.Notes.MissGraceMs
	flash.R, flash.G, flash.B = 1, 0.4, 0.4
	return true
}

// missPending judges every still-pending note missed. Returns how many were.
func missPending(w donburi.World, now float64) int {
	var pending []*donburi.Entry
	tags.Note.Each(w, func(e *donburi.Entry) {
		if components.Note.Get(e).Pending() {
			pending = append(pending, e)
		}
	})
	for _, e := range pending {
		judgeMiss(w, e, now)
	}
	return len(pending)
}

func judgmentEvent(note *components.NoteData, t messages.Judgment) messages.NoteEvent {
	return messages.NoteEvent{
		TimeMs: note.ScheduledMs,
		Lane:   note.Lane,
		Type:   t,
	}
}

func playerX(w donburi.World) (float64, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return 0, false
	}
	return components.Object.Get(entry).X, true
}
