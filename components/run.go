package components

import (
	"github.com/automoto/songrunner/shared/messages"
	"github.com/automoto/songrunner/timeline"
	"github.com/yohamta/donburi"
)

// RunData is the run-scoped aggregate owned by the level (singleton component).
// Score and Events are written only by the judgment collector.
type RunData struct {
	SongKey      string
	PartKey      string
	MusicStartMs float64
	EndMs        float64
	Score        int
	Hits         int
	Misses       int
	Spawned      int
	Events       []messages.NoteEvent
	Started      bool // music has started
	Ended        bool
}

// Judged returns the number of notes judged so far.
func (r *RunData) Judged() int { return r.Hits + r.Misses }

var Run = donburi.NewComponentType[RunData]()

// ClockData holds the run's virtual clock and its timer queue.
type ClockData struct {
	Timers *timeline.Timers
}

func (c *ClockData) Now() float64 { return c.Timers.Clock().Now() }

var Clock = donburi.NewComponentType[ClockData]()
