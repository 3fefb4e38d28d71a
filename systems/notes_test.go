package systems

import (
	"testing"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/automoto/songrunner/shared/songmap"
	"github.com/automoto/songrunner/systems/factory"
	"github.com/automoto/songrunner/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newJudgingWorld(now float64) (donburi.World, *timeline.Timers) {
	w, timers := newScheduledWorld(now)
	events.NoteJudged.Subscribe(w, RecordJudgment)
	return w, timers
}

func testNote(w donburi.World, scheduledMs float64, lane int) *donburi.Entry {
	return factory.CreateNote(w, factory.NoteSpec{
		Lane:        lane,
		X:           1330,
		Y:           cfg.Notes.LaneY[lane-1],
		SpawnX:      1330,
		ScheduledMs: scheduledMs,
		HitMs:       scheduledMs + 3000,
		Speed:       200,
	})
}

func TestCollectIsIdempotent(t *testing.T) {
	w, _ := newJudgingWorld(0)
	e := testNote(w, 1200, 4)

	assert.True(t, Collect(w, e))
	assert.False(t, Collect(w, e))
	events.Flush(w)

	run := runData(t, w)
	assert.Equal(t, 100, run.Score)
	require.Len(t, run.Events, 1)
	assert.Equal(t, messages.NoteEvent{TimeMs: 1200, Lane: 4, Type: messages.Hit}, run.Events[0])
	assert.Zero(t, countNotes(w), "a hit note is disposed immediately")
}

func TestNoteMissedOnceWhenPassingPlayer(t *testing.T) {
	w, timers := newJudgingWorld(0)
	factory.CreatePlayer(w, 730, 600)
	e := testNote(w, 0, 2)

	timers.Tick(3000)
	UpdateNotes(w)
	assert.Equal(t, components.NotePending, components.Note.Get(e).State, "exactly on the hit line is not past it")

	timers.Tick(10)
	UpdateNotes(w)
	note := components.Note.Get(e)
	assert.Equal(t, components.NoteMissed, note.State)
	assert.Equal(t, 3010.0, note.JudgedMs)
	frozenX := components.Object.Get(e).X

	// Grace period: still visible, no further judgment, no movement.
	timers.Tick(500)
	UpdateNotes(w)
	assert.False(t, Collect(w, e))
	events.Flush(w)
	assert.Equal(t, frozenX, components.Object.Get(e).X)

	run := runData(t, w)
	require.Len(t, run.Events, 1)
	assert.Equal(t, messages.Miss, run.Events[0].Type)
	assert.Zero(t, run.Score)

	UpdateEffects(w, cfg.Notes.MissGraceMs-1)
	assert.True(t, e.Valid())
	UpdateEffects(w, 1)
	assert.False(t, e.Valid())
}

func TestNoteMissedOffscreenWithoutPlayer(t *testing.T) {
	w, timers := newJudgingWorld(0)
	e := testNote(w, 0, 1)

	// x < -64 after (1330+64)/0.2 ms.
	timers.Tick(6970)
	UpdateNotes(w)
	assert.True(t, components.Note.Get(e).Pending())

	timers.Tick(10)
	UpdateNotes(w)
	assert.Equal(t, components.NoteMissed, components.Note.Get(e).State)
}

func TestNoteSpawnedPastPlayerIsJudgedOnce(t *testing.T) {
	w, _ := newJudgingWorld(6000)
	factory.CreatePlayer(w, 730, 600)

	m := mustMap(t, songmap.Note{Time: 5000, Lane: 2, Frame: frame(0)})
	ScheduleNotes(w, m, lateParams, nil, func() {})

	UpdateNotes(w)
	UpdateNotes(w)
	UpdateCollect(w)
	events.Flush(w)

	run := runData(t, w)
	require.Len(t, run.Events, 1)
	assert.Equal(t, messages.Miss, run.Events[0].Type)
	assert.Equal(t, 2000.0, run.Events[0].TimeMs)
}

func TestMissPendingSkipsJudgedNotes(t *testing.T) {
	w, _ := newJudgingWorld(0)
	hit := testNote(w, 100, 1)
	testNote(w, 200, 2)
	testNote(w, 300, 3)

	require.True(t, Collect(w, hit))
	assert.Equal(t, 2, missPending(w, 400))
	assert.Zero(t, missPending(w, 400))
	events.Flush(w)

	run := runData(t, w)
	assert.Equal(t, 1, run.Hits)
	assert.Equal(t, 2, run.Misses)
}
