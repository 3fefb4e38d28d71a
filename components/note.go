package components

import "github.com/yohamta/donburi"

// NoteState is the judgment state of a spawned note. It leaves NotePending at
// most once.
type NoteState int

const (
	NotePending NoteState = iota
	NoteHit
	NoteMissed
)

func (s NoteState) String() string {
	switch s {
	case NotePending:
		return "pending"
	case NoteHit:
		return "hit"
	case NoteMissed:
		return "missed"
	}
	return "unknown"
}

type NoteData struct {
	Lane        int
	Frame       int
	SpawnX      float64 // entry x before any lateness shift
	ScheduledMs float64 // authoritative spawn time; stamped on the judgment event
	HitMs       float64 // when the note reaches the hit line
	SpeedX      float64 // px per ms, negative is leftward
	State       NoteState
	JudgedMs    float64
}

// Pending reports whether the note still awaits judgment.
func (n *NoteData) Pending() bool { return n.State == NotePending }

var Note = donburi.NewComponentType[NoteData]()
