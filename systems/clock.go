package systems

import (
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/yohamta/donburi"
)

// UpdateClock advances the run clock by dtMs, clamped to one frame hitch, and
// fires every callback that became due. It returns the step actually applied.
func UpdateClock(w donburi.World, dtMs float64) float64 {
	clock, ok := runClock(w)
	if !ok {
		return 0
	}
	if clock.Timers.Clock().Paused() || dtMs <= 0 {
		return 0
	}
	dtMs = min(dtMs, cfg.Notes.MaxFrameStepMs)
	clock.Timers.Tick(dtMs)
	return dtMs
}

// PauseRun freezes the run clock; nothing is scheduled or moved until ResumeRun.
func PauseRun(w donburi.World) {
	if clock, ok := runClock(w); ok {
		clock.Timers.Clock().Pause()
		PauseTracks(w)
	}
}

func ResumeRun(w donburi.World) {
	clock, ok := runClock(w)
	if !ok {
		return
	}
	clock.Timers.Clock().Resume()
	if run, ok := runState(w); ok && run.Started && !run.Ended {
		PlayTracks(w)
	}
}

// RunNow returns the run clock's current time.
func RunNow(w donburi.World) (float64, bool) {
	clock, ok := runClock(w)
	if !ok {
		return 0, false
	}
	return clock.Now(), true
}

func runClock(w donburi.World) (*components.ClockData, bool) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil, false
	}
	return components.Clock.Get(entry), true
}

func runState(w donburi.World) (*components.RunData, bool) {
	entry, ok := components.Run.First(w)
	if !ok {
		return nil, false
	}
	return components.Run.Get(entry), true
}
