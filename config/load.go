package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML overlay for gameplay values. Unset fields keep
// the defaults from init().
type Tuning struct {
	Width       *int     `yaml:"width"`
	Height      *int     `yaml:"height"`
	NoteSpeed   *float64 `yaml:"note_speed"`
	SpawnMargin *float64 `yaml:"spawn_margin"`
	MissGraceMs *float64 `yaml:"miss_grace_ms"`
	EpilogueMs  *float64 `yaml:"epilogue_ms"`
	PreRollMs   *float64 `yaml:"pre_roll_ms"`
	HitPoints   *int     `yaml:"hit_points"`
	DuckMs      *float64 `yaml:"duck_ms"`
	UnduckMs    *float64 `yaml:"unduck_ms"`
	ScoringURL  *string  `yaml:"scoring_url"`
}

// LoadTuning reads a tuning overlay from disk.
func LoadTuning(path string) (*Tuning, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTuning(b)
}

// ParseTuning decodes a tuning overlay.
func ParseTuning(b []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if t.NoteSpeed != nil && *t.NoteSpeed <= 0 {
		return nil, fmt.Errorf("parse tuning: note_speed must be positive, got %v", *t.NoteSpeed)
	}
	return &t, nil
}

// Apply copies every set field into the global configuration.
func (t *Tuning) Apply() {
	if t.Width != nil {
		C.Width = *t.Width
	}
	if t.Height != nil {
		C.Height = *t.Height
	}
	if t.NoteSpeed != nil {
		Notes.Speed = *t.NoteSpeed
	}
	if t.SpawnMargin != nil {
		Notes.SpawnMargin = *t.SpawnMargin
	}
	if t.MissGraceMs != nil {
		Notes.MissGraceMs = *t.MissGraceMs
	}
	if t.EpilogueMs != nil {
		Notes.EpilogueMs = *t.EpilogueMs
	}
	if t.PreRollMs != nil {
		Notes.PreRollMs = *t.PreRollMs
	}
	if t.HitPoints != nil {
		Scoring.HitPoints = *t.HitPoints
	}
	if t.DuckMs != nil {
		Duck.DuckMs = *t.DuckMs
	}
	if t.UnduckMs != nil {
		Duck.UnduckMs = *t.UnduckMs
	}
	if t.ScoringURL != nil {
		Network.ScoringURL = *t.ScoringURL
	}
}
