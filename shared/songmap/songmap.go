// Package songmap parses song maps: the timed note list of one playable part.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package songmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
)

const (
	MinLane = 1
	MaxLane = 4
)

var (
	ErrEmpty       = errors.New("song map has no notes")
	ErrInvalidNote = errors.New("invalid note")
)

// Note is one authored note event.
type Note struct {
	Time  float64 `json:"time"`            // ms from song start
	Lane  int     `json:"lane"`            // 1..4
	Frame *int    `json:"frame,omitempty"` // visual variant; nil lets the spawner pick
}

// FrameOr returns the authored frame or fallback when none was authored.
func (n Note) FrameOr(fallback int) int {
	if n.Frame == nil {
		return fallback
	}
	return *n.Frame
}

// SongMap is an immutable list of notes. Order is preserved as authored;
// authored order is not required to be sorted by time.
type SongMap struct {
	notes []Note
}

type fileFormat struct {
	Notes []Note `json:"notes"`
}

// New builds a SongMap from notes after validating them.
func New(notes []Note) (*SongMap, error) {
	if len(notes) == 0 {
		return nil, ErrEmpty
	}
	for i, n := range notes {
		if n.Lane < MinLane || n.Lane > MaxLane {
			return nil, fmt.Errorf("%w: note %d lane %d outside %d..%d", ErrInvalidNote, i, n.Lane, MinLane, MaxLane)
		}
		if n.Time < 0 {
			return nil, fmt.Errorf("%w: note %d has negative time %v", ErrInvalidNote, i, n.Time)
		}
		if n.Frame != nil && *n.Frame < 0 {
			return nil, fmt.Errorf("%w: note %d has negative frame", ErrInvalidNote, i)
		}
	}
	return &SongMap{notes: slices.Clone(notes)}, nil
}

// Parse decodes a JSON song map of the form {"notes":[{"time":..,"lane":..,"frame":..}]}.
func Parse(data []byte) (*SongMap, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode song map: %w", err)
	}
	return New(f.Notes)
}

// Load reads and parses a song map. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, path string) (*SongMap, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read song map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("song map %s: %w", path, err)
	}
	return m, nil
}

// Len returns the number of notes.
func (m *SongMap) Len() int { return len(m.notes) }

// Sorted returns a copy of the notes ordered by time; ties keep authored order.
func (m *SongMap) Sorted() []Note {
	out := slices.Clone(m.notes)
	slices.SortStableFunc(out, func(a, b Note) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	return out
}
