package systems

import (
	"testing"

	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectRunEventsSortsByScheduledTime(t *testing.T) {
	w, _ := newJudgingWorld(0)
	arrivals := []messages.NoteEvent{
		{TimeMs: 3000, Lane: 1, Type: messages.Hit},
		{TimeMs: 1000, Lane: 2, Type: messages.Miss},
		{TimeMs: 2000, Lane: 3, Type: messages.Hit},
		{TimeMs: 1000, Lane: 4, Type: messages.Hit},
	}
	for _, ev := range arrivals {
		events.NoteJudged.Publish(w, ev)
	}
	events.Flush(w)

	sorted := CollectRunEvents(w)
	require.Len(t, sorted, 4)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].TimeMs, sorted[i].TimeMs)
	}
	assert.Equal(t, 2, sorted[0].Lane, "ties keep arrival order")
	assert.Equal(t, 4, sorted[1].Lane)

	run := runData(t, w)
	assert.Equal(t, arrivals, run.Events, "the recorded list keeps arrival order")
}

func TestScoreAccumulatesPerHit(t *testing.T) {
	w, _ := newJudgingWorld(0)
	for i := range 5 {
		RecordJudgment(w, messages.NoteEvent{TimeMs: float64(i * 500), Lane: 1, Type: messages.Hit})
	}

	run := runData(t, w)
	assert.Equal(t, 500, run.Score)
	assert.Equal(t, 5, run.Hits)
	assert.Zero(t, run.Misses)
}

func TestMissDoesNotChangeScore(t *testing.T) {
	w, _ := newJudgingWorld(0)
	RecordJudgment(w, messages.NoteEvent{TimeMs: 1, Lane: 1, Type: messages.Hit})
	RecordJudgment(w, messages.NoteEvent{TimeMs: 2, Lane: 1, Type: messages.Miss})

	run := runData(t, w)
	assert.Equal(t, 100, run.Score)
	assert.Equal(t, 2, run.Judged())
}

func TestRecordJudgmentIgnoresUnknownType(t *testing.T) {
	w, _ := newJudgingWorld(0)
	RecordJudgment(w, messages.NoteEvent{TimeMs: 1, Lane: 1, Type: "GOOD"})

	run := runData(t, w)
	assert.Zero(t, run.Score)
	assert.Zero(t, run.Judged())
}
