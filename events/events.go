// Package events holds the world-scoped messages gameplay systems publish.
// Subscribers are registered by the level when a run starts.
package events

import (
	"github.com/automoto/songrunner/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NoteJudged is published once per note, at the moment it is judged.
var NoteJudged = events.NewEventType[messages.NoteEvent]()

// RunEnded is published when the end-of-run callback fires.
var RunEnded = events.NewEventType[RunSummary]()

// RunSummary is the final local tally of a run.
type RunSummary struct {
	SongKey string
	PartKey string
	Score   int
	Hits    int
	Misses  int
}

// Flush delivers every queued event to its subscribers.
func Flush(w donburi.World) {
	NoteJudged.ProcessEvents(w)
	RunEnded.ProcessEvents(w)
}
