package systems

import (
	"testing"

	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/shared/songmap"
	"github.com/automoto/songrunner/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lateParams = ScheduleParams{
	SpawnX:       1330,
	HitX:         730,
	Speed:        200,
	MusicStartMs: 0,
	EpilogueMs:   2000,
}

func TestPlanSpawnsOnTime(t *testing.T) {
	m := mustMap(t, songmap.Note{Time: 5000, Lane: 2})
	assert.Equal(t, 3000.0, lateParams.TravelMs())

	plans, _ := PlanSpawns(m, lateParams, 500)
	require.Len(t, plans, 1)
	assert.Equal(t, 5000.0, plans[0].HitMs)
	assert.Equal(t, 2000.0, plans[0].SpawnMs)
	assert.Equal(t, 1500.0, plans[0].DelayMs)
	assert.False(t, plans[0].Late())
	assert.Equal(t, 1330.0, plans[0].X)
}

func TestPlanSpawnsShiftsLateNotesLeft(t *testing.T) {
	m := mustMap(t, songmap.Note{Time: 5000, Lane: 2})

	// One second past the ideal spawn time of 2000.
	plans, _ := PlanSpawns(m, lateParams, 3000)
	require.Len(t, plans, 1)
	assert.True(t, plans[0].Late())
	assert.Equal(t, -1000.0, plans[0].DelayMs)
	assert.Equal(t, 1130.0, plans[0].X)

	// Arrival at the hit line is unchanged: 400px left to go at 200px/s.
	arrival := 3000 + (plans[0].X-lateParams.HitX)/lateParams.Speed*1000
	assert.Equal(t, plans[0].HitMs, arrival)
}

// Lateness counts from the ideal spawn time (2000), not the hit time, so at
// 6000 the note is 4000 ms late: 1330 - 4000*200/1000 = 530.
func TestPlanSpawnsLatenessCountsFromSpawnTimeNotHitTime(t *testing.T) {
	m := mustMap(t, songmap.Note{Time: 5000, Lane: 2})
	plans, _ := PlanSpawns(m, lateParams, 6000)
	require.Len(t, plans, 1)
	assert.Equal(t, 530.0, plans[0].X)
}

func TestPlanSpawnsIsDeterministicAndSorted(t *testing.T) {
	m := mustMap(t,
		songmap.Note{Time: 4000, Lane: 1},
		songmap.Note{Time: 1000, Lane: 3},
		songmap.Note{Time: 4000, Lane: 2},
	)
	a, endA := PlanSpawns(m, lateParams, 0)
	b, endB := PlanSpawns(m, lateParams, 0)
	assert.Equal(t, a, b)
	assert.Equal(t, endA, endB)

	var lanes []int
	for _, p := range a {
		lanes = append(lanes, p.Note.Lane)
	}
	assert.Equal(t, []int{3, 1, 2}, lanes)
}

func TestPlanSpawnsEndTime(t *testing.T) {
	m := mustMap(t,
		songmap.Note{Time: 9000, Lane: 1},
		songmap.Note{Time: 3000, Lane: 2},
	)
	_, end := PlanSpawns(m, lateParams, 0)
	assert.Equal(t, 11000.0, end)

	_, end = PlanSpawns(m, lateParams, 20000)
	assert.Equal(t, 20000.0, end, "end is never scheduled in the past")
}

func TestScheduleNotesSpawnsLateNotesImmediately(t *testing.T) {
	w, timers := newScheduledWorld(3000)
	m := mustMap(t,
		songmap.Note{Time: 5000, Lane: 2, Frame: frame(1)},
		songmap.Note{Time: 9000, Lane: 3},
	)

	ended := false
	end := ScheduleNotes(w, m, lateParams, func() int { return 2 }, func() { ended = true })
	assert.Equal(t, 11000.0, end)

	entry, ok := tags.Note.First(w)
	require.True(t, ok)
	assert.Equal(t, 1130.0, components.Object.Get(entry).X)
	note := components.Note.Get(entry)
	assert.Equal(t, 2000.0, note.ScheduledMs)
	assert.Equal(t, 1, note.Frame)

	// Second note is deferred to its ideal spawn time of 6000.
	timers.Tick(2999)
	assert.Equal(t, 1, countNotes(w))
	timers.Tick(1)
	assert.Equal(t, 2, countNotes(w))

	timers.Tick(5000)
	assert.True(t, ended)
}

func TestScheduledSpawnAfterFrameHitchIsCompensated(t *testing.T) {
	w, timers := newScheduledWorld(0)
	m := mustMap(t, songmap.Note{Time: 5000, Lane: 1, Frame: frame(0)})
	ScheduleNotes(w, m, lateParams, nil, func() {})

	// The spawn timer is due at 2000 but the next frame lands at 2050.
	timers.Tick(2050)
	entry, ok := tags.Note.First(w)
	require.True(t, ok)
	assert.Equal(t, 1320.0, components.Object.Get(entry).X)
}
