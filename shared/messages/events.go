// Package messages holds the wire types shared by the game client and the
// scoring service.
package messages

import "fmt"

// Judgment is the final classification of a note.
type Judgment string

const (
	Hit  Judgment = "HIT"
	Miss Judgment = "MISS"
)

func (j Judgment) Valid() bool { return j == Hit || j == Miss }

// NoteEvent is the telemetry record created once per note at judgment time.
type NoteEvent struct {
	TimeMs float64  `json:"timeMs"` // the note's scheduled time, not the emission time
	Lane   int      `json:"lane"`
	Type   Judgment `json:"type"`
}

// RunData is the run section of a submission.
type RunData struct {
	SongKey string      `json:"songKey"`
	PartKey string      `json:"partKey"`
	Events  []NoteEvent `json:"events"`
}

// RunSubmission is the body of POST /runs/submit.
type RunSubmission struct {
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Run   RunData `json:"run"`
}

// Validate checks the fields the scoring service relies on.
func (s *RunSubmission) Validate() error {
	if s.Run.SongKey == "" || s.Run.PartKey == "" {
		return fmt.Errorf("songKey and partKey required")
	}
	for i, e := range s.Run.Events {
		if !e.Type.Valid() {
			return fmt.Errorf("event %d: unknown type %q", i, e.Type)
		}
	}
	return nil
}

// SubmitResult is the success response of POST /runs/submit. Unknown fields
// are ignored.
type SubmitResult struct {
	Score  int `json:"score"`
	Hits   int `json:"hits,omitempty"`
	Misses int `json:"misses,omitempty"`
}

// LeaderboardEntry is one row of GET /leaderboard.
type LeaderboardEntry struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	SongKey string `json:"songKey"`
	PartKey string `json:"partKey"`
}
