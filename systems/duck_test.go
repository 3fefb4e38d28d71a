package systems

import (
	"testing"

	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func duckData(t *testing.T, w donburi.World) *components.DuckData {
	t.Helper()
	duck, ok := duckState(w)
	require.True(t, ok)
	return duck
}

func TestConsecutiveMissesDuckOnce(t *testing.T) {
	w, lead := newTestLevel(t)
	addBareRun(w, 0)
	misses := []messages.NoteEvent{
		{TimeMs: 1, Lane: 1, Type: messages.Miss},
		{TimeMs: 2, Lane: 1, Type: messages.Miss},
	}
	for _, ev := range misses {
		RecordJudgment(w, ev)
	}

	duck := duckData(t, w)
	assert.True(t, duck.Ducked)
	assert.Equal(t, 1, duck.Fades)

	UpdateDuck(w, 150)
	assert.InDelta(t, 0.5, lead.volume, 1e-6)
	UpdateDuck(w, 150)
	assert.Equal(t, 0.0, lead.volume)
	assert.Nil(t, duck.Tween)
}

func TestHitWhileUnduckedIsNoop(t *testing.T) {
	w, lead := newTestLevel(t)
	assert.False(t, UnduckTrack(w))
	UpdateDuck(w, 100)

	assert.Zero(t, duckData(t, w).Fades)
	assert.Zero(t, lead.sets)
}

func TestUnduckRetargetsFromCurrentLevel(t *testing.T) {
	w, lead := newTestLevel(t)
	require.True(t, DuckTrack(w))
	UpdateDuck(w, 150)
	require.InDelta(t, 0.5, lead.volume, 1e-6)

	require.True(t, UnduckTrack(w))
	UpdateDuck(w, 75)
	assert.InDelta(t, 0.75, lead.volume, 1e-6)
	UpdateDuck(w, 75)
	assert.Equal(t, 1.0, lead.volume)

	duck := duckData(t, w)
	assert.False(t, duck.Ducked)
	assert.Equal(t, 2, duck.Fades)
}

func TestDuckOnlyTouchesControlledTrack(t *testing.T) {
	w, _ := newTestLevel(t)
	entry, ok := components.Audio.First(w)
	require.True(t, ok)
	bass := components.Audio.Get(entry).Tracks["bass"].(*fakeTrack)

	DuckTrack(w)
	UpdateDuck(w, 300)
	assert.Zero(t, bass.sets)
}

func TestDuckScalesWithMusicVolume(t *testing.T) {
	w, lead := newTestLevel(t)
	entry, _ := components.Audio.First(w)
	components.Audio.Get(entry).MusicVolume = 0.5

	DuckTrack(w)
	UpdateDuck(w, 150)
	assert.InDelta(t, 0.25, lead.volume, 1e-6)
}
