package app

import (
	"testing"

	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/history"
	"github.com/automoto/songrunner/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitterIsNilInterfaceOffline(t *testing.T) {
	a := &Context{}
	assert.Nil(t, a.Submitter())

	a.Scoring = network.NewClient("http://localhost:8080")
	assert.NotNil(t, a.Submitter())
}

func TestRecordRunReturnsPersonalBest(t *testing.T) {
	db, err := history.Open(":memory:")
	require.NoError(t, err)
	a := &Context{History: db}
	t.Cleanup(a.Close)

	summary := events.RunSummary{SongKey: "lucia", PartKey: "alto", Score: 300, Hits: 3, Misses: 1}

	best, ok := a.RecordRun(summary, components.ReportData{Status: components.ReportFailed, LocalScore: 300})
	require.True(t, ok)
	assert.Equal(t, 300, best)

	best, ok = a.RecordRun(summary, components.ReportData{Status: components.ReportSubmitted, LocalScore: 200, ServerScore: 700})
	require.True(t, ok)
	assert.Equal(t, 700, best, "the confirmed server score counts")

	best, ok = a.RecordRun(summary, components.ReportData{Status: components.ReportSkipped, LocalScore: 100})
	require.True(t, ok)
	assert.Equal(t, 700, best)
}

func TestRecordRunWithoutHistory(t *testing.T) {
	a := &Context{}
	_, ok := a.RecordRun(events.RunSummary{SongKey: "lucia", PartKey: "alto"}, components.ReportData{})
	assert.False(t, ok)
}

func TestRecentScoresNewestFirst(t *testing.T) {
	db, err := history.Open(":memory:")
	require.NoError(t, err)
	a := &Context{History: db}
	t.Cleanup(a.Close)

	summary := events.RunSummary{SongKey: "lucia", PartKey: "alto"}
	a.RecordRun(summary, components.ReportData{Status: components.ReportFailed, LocalScore: 100})
	a.RecordRun(summary, components.ReportData{Status: components.ReportSubmitted, LocalScore: 150, ServerScore: 200})
	a.RecordRun(summary, components.ReportData{Status: components.ReportPending, LocalScore: 300})

	assert.Equal(t, []int{300, 200}, a.RecentScores("lucia", "alto", 2))
	assert.Empty(t, a.RecentScores("lucia", "soprano", 2))
	assert.Nil(t, (&Context{}).RecentScores("lucia", "alto", 2))
}
