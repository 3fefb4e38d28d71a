package components

import (
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/messages"
)

// SongSelectData stores the menu's song/part choice, the player identity
// being edited and the audio settings.
type SongSelectData struct {
	Songs     []cfg.SongConfig
	SongIndex int
	PartIndex int

	// Identity sent with run submissions. Both empty means play offline.
	Email string
	Name  string

	MusicVolume float64
	SFXVolume   float64
	Muted       bool

	// Leaderboard of the selected part, when the scoring service answered.
	Leaderboard    []messages.LeaderboardEntry
	LeaderboardErr string
}
