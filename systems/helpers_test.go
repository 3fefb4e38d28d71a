package systems

import (
	"testing"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/leveldata"
	"github.com/automoto/songrunner/shared/songmap"
	"github.com/automoto/songrunner/systems/factory"
	"github.com/automoto/songrunner/tags"
	"github.com/automoto/songrunner/timeline"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const (
	testWidth  = 1280
	testHeight = 720
	frameMs    = 10.0
)

type fakeTrack struct {
	volume  float64
	playing bool
	sets    int
}

func (t *fakeTrack) SetVolume(v float64) { t.volume = v; t.sets++ }
func (t *fakeTrack) Volume() float64     { return t.volume }
func (t *fakeTrack) Play()               { t.playing = true }
func (t *fakeTrack) Pause()              { t.playing = false }
func (t *fakeTrack) IsPlaying() bool     { return t.playing }

func testGeometry() *leveldata.LevelGeometry {
	return &leveldata.LevelGeometry{
		Ground:      []leveldata.Rect{{X: 0, Y: 600, W: testWidth, H: 136}},
		PlayerSpawn: leveldata.SpawnPoint{X: testWidth / 6, Y: 600},
		MapWidth:    testWidth,
		MapHeight:   736,
	}
}

// newTestLevel builds a world with a level, a runner standing on the ground
// and an audio entity whose controlled stem is returned.
func newTestLevel(t *testing.T) (donburi.World, *fakeTrack) {
	t.Helper()
	w := donburi.NewWorld()
	song := cfg.SongConfig{Key: "testsong", Level: cfg.LevelConfig{Tracks: []cfg.TrackConfig{{Key: "lead"}, {Key: "bass"}}}}
	part := cfg.PartConfig{Key: "lead", ControlledTrack: "lead"}
	factory.CreateLevel(w, song, part, testGeometry(), testWidth, testHeight)

	lead, bass := &fakeTrack{}, &fakeTrack{}
	CreateAudio(w, map[string]components.Track{"lead": lead, "bass": bass}, "lead", 1, 1, false)
	return w, lead
}

func mustMap(t *testing.T, notes ...songmap.Note) *songmap.SongMap {
	t.Helper()
	m, err := songmap.New(notes)
	require.NoError(t, err)
	return m
}

func frame(v int) *int { return &v }

// runUntil ticks the world until the clock reaches ms.
func runUntil(w donburi.World, ms float64) {
	for {
		now, ok := RunNow(w)
		if !ok || now >= ms {
			return
		}
		Tick(w, min(frameMs, ms-now))
	}
}

func runData(t *testing.T, w donburi.World) *components.RunData {
	t.Helper()
	run, ok := runState(w)
	require.True(t, ok)
	return run
}

func countNotes(w donburi.World) int {
	return donburi.NewQuery(filter.Contains(tags.Note)).Count(w)
}

// newScheduledWorld builds a world holding only a bare run whose clock reads now.
func newScheduledWorld(now float64) (donburi.World, *timeline.Timers) {
	w := donburi.NewWorld()
	return w, addBareRun(w, now)
}

func addBareRun(w donburi.World, now float64) *timeline.Timers {
	timers := timeline.NewTimers(timeline.NewClock(now))
	entry := w.Entry(w.Create(components.Clock, components.Run))
	components.Clock.SetValue(entry, components.ClockData{Timers: timers})
	return timers
}
