package systems

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/automoto/songrunner/archetypes"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/automoto/songrunner/shared/songmap"
	"github.com/automoto/songrunner/timeline"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

var ErrRunExists = errors.New("run already started in this world")

// RunSetup is everything a run needs besides the world it runs in.
type RunSetup struct {
	SongKey string
	PartKey string
	Map     *songmap.SongMap

	// Identity sent with the submission.
	Email string
	Name  string

	Submitter Submitter       // nil skips submission
	Ctx       context.Context // bounds the submission; nil means Background

	// FrameSeed seeds visual frame selection for notes without a frame.
	FrameSeed uint64
}

// StartRun creates the run state and its clock, registers the judgment
// collector, starts the music after the pre-roll and schedules every note.
// The level and player must already exist.
func StartRun(w donburi.World, setup RunSetup) error {
	if _, ok := components.Run.First(w); ok {
		return ErrRunExists
	}
	if setup.Map == nil {
		return songmap.ErrEmpty
	}

	clock := timeline.NewClock(0)
	timers := timeline.NewTimers(clock)
	musicStart := clock.Now() + cfg.Notes.PreRollMs

	entry := archetypes.Run.Spawn(w)
	components.Clock.SetValue(entry, components.ClockData{Timers: timers})
	components.Run.SetValue(entry, components.RunData{
		SongKey:      setup.SongKey,
		PartKey:      setup.PartKey,
		MusicStartMs: musicStart,
	})

	events.NoteJudged.Subscribe(w, RecordJudgment)

	timers.At(musicStart, func() {
		if run, ok := runState(w); ok {
			run.Started = true
		}
		PlayTracks(w)
	})

	params := ScheduleParams{
		SpawnX:       cfg.NoteSpawnX(screenWidth(w)),
		HitX:         cfg.PlayerX(screenWidth(w)),
		Speed:        cfg.Notes.Speed,
		MusicStartMs: musicStart,
		EpilogueMs:   cfg.Notes.EpilogueMs,
	}
	if x, ok := playerX(w); ok {
		params.HitX = x
	}

	rng := rand.New(rand.NewPCG(setup.FrameSeed, setup.FrameSeed^0x9e3779b97f4a7c15))
	pickFrame := func() int { return rng.IntN(max(cfg.Notes.FrameVariants, 1)) }

	endMs := ScheduleNotes(w, setup.Map, params, pickFrame, func() { EndRun(w, setup) })
	components.Run.Get(entry).EndMs = endMs

	log.Info().
		Str("song", setup.SongKey).
		Str("part", setup.PartKey).
		Int("notes", setup.Map.Len()).
		Float64("musicStartMs", musicStart).
		Float64("endMs", endMs).
		Msg("run started")
	return nil
}

// EndRun finishes the run: notes still pending are judged missed, every
// pending callback is dropped, the music stops and the sorted events are
// submitted. It runs once; later calls do nothing.
func EndRun(w donburi.World, setup RunSetup) {
	entry, ok := components.Run.First(w)
	if !ok {
		return
	}
	run := components.Run.Get(entry)
	if run.Ended {
		return
	}
	clock := components.Clock.Get(entry)
	now := clock.Now()

	if n := missPending(w, now); n > 0 {
		log.Debug().Int("notes", n).Msg("judging notes still in flight as missed")
	}
	events.NoteJudged.ProcessEvents(w)

	run.Ended = true
	clock.Timers.Stop()
	PauseTracks(w)

	report := components.Report.Get(entry)
	report.LocalScore = run.Score
	StartReport(setup.Ctx, report, setup.Submitter, messages.RunSubmission{
		Email: setup.Email,
		Name:  setup.Name,
		Run: messages.RunData{
			SongKey: run.SongKey,
			PartKey: run.PartKey,
			Events:  SortEvents(run.Events),
		},
	})

	events.RunEnded.Publish(w, events.RunSummary{
		SongKey: run.SongKey,
		PartKey: run.PartKey,
		Score:   run.Score,
		Hits:    run.Hits,
		Misses:  run.Misses,
	})

	log.Info().
		Str("song", run.SongKey).
		Str("part", run.PartKey).
		Int("score", run.Score).
		Int("hits", run.Hits).
		Int("misses", run.Misses).
		Msg("run ended")
}

// CancelRun abandons the run without reporting it. Nothing scheduled for the
// run fires afterwards.
func CancelRun(w donburi.World) {
	entry, ok := components.Run.First(w)
	if !ok {
		return
	}
	run := components.Run.Get(entry)
	if run.Ended {
		return
	}
	run.Ended = true
	components.Clock.Get(entry).Timers.Stop()
	PauseTracks(w)
	log.Info().Str("song", run.SongKey).Str("part", run.PartKey).Msg("run cancelled")
}

func screenWidth(w donburi.World) int {
	if entry, ok := components.Level.First(w); ok {
		if sw := components.Level.Get(entry).ScreenWidth; sw > 0 {
			return sw
		}
	}
	return cfg.C.Width
}
