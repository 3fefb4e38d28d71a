package systems

import (
	"slices"

	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// RecordJudgment is the run's only writer of score and events. The level
// subscribes it to events.NoteJudged when the run starts.
func RecordJudgment(w donburi.World, ev messages.NoteEvent) {
	run, ok := runState(w)
	if !ok {
		return
	}
	run.Events = append(run.Events, ev)

	switch ev.Type {
	case messages.Hit:
		run.Score += cfg.Scoring.HitPoints
		run.Hits++
		UnduckTrack(w)
		QueueSFX(w, cfg.SoundNoteHit)
	case messages.Miss:
		run.Misses++
		DuckTrack(w)
		QueueSFX(w, cfg.SoundNoteMiss)
	default:
		log.Warn().Str("type", string(ev.Type)).Msg("ignoring judgment of unknown type")
		return
	}

	log.Debug().
		Str("type", string(ev.Type)).
		Float64("timeMs", ev.TimeMs).
		Int("lane", ev.Lane).
		Int("score", run.Score).
		Msg("note judged")
}

// CollectRunEvents returns the run's events ordered by their notes' scheduled
// time, however out of order they were judged.
func CollectRunEvents(w donburi.World) []messages.NoteEvent {
	run, ok := runState(w)
	if !ok {
		return nil
	}
	return SortEvents(run.Events)
}

// SortEvents returns a copy of evs stably sorted by TimeMs.
func SortEvents(evs []messages.NoteEvent) []messages.NoteEvent {
	out := slices.Clone(evs)
	slices.SortStableFunc(out, func(a, b messages.NoteEvent) int {
		switch {
		case a.TimeMs < b.TimeMs:
			return -1
		case a.TimeMs > b.TimeMs:
			return 1
		}
		return 0
	})
	return out
}
