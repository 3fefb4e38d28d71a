package systems

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
)

var (
	ErrNoSongs            = errors.New("no songs available")
	ErrIncompleteIdentity = errors.New("enter both email and name, or neither to play offline")
)

// InitSongSelect points the selection at songKey/partKey when they exist,
// otherwise at the first part of the first song.
func InitSongSelect(sel *components.SongSelectData, songs []cfg.SongConfig, songKey, partKey string) {
	sel.Songs = songs
	sel.SongIndex = 0
	sel.PartIndex = 0
	for i, song := range songs {
		if song.Key != songKey {
			continue
		}
		sel.SongIndex = i
		for j, part := range song.Parts {
			if part.Key == partKey {
				sel.PartIndex = j
			}
		}
	}
}

// SelectedSong returns the highlighted song and part.
func SelectedSong(sel *components.SongSelectData) (cfg.SongConfig, cfg.PartConfig, bool) {
	if sel.SongIndex < 0 || sel.SongIndex >= len(sel.Songs) {
		return cfg.SongConfig{}, cfg.PartConfig{}, false
	}
	song := sel.Songs[sel.SongIndex]
	if sel.PartIndex < 0 || sel.PartIndex >= len(song.Parts) {
		return cfg.SongConfig{}, cfg.PartConfig{}, false
	}
	return song, song.Parts[sel.PartIndex], true
}

// CycleSong moves to the next song and resets the part.
func CycleSong(sel *components.SongSelectData) {
	if len(sel.Songs) == 0 {
		return
	}
	sel.SongIndex = (sel.SongIndex + 1) % len(sel.Songs)
	sel.PartIndex = 0
	sel.Leaderboard = nil
	sel.LeaderboardErr = ""
}

// CyclePart moves to the next part of the current song.
func CyclePart(sel *components.SongSelectData) {
	song, _, ok := SelectedSong(sel)
	if !ok || len(song.Parts) == 0 {
		return
	}
	sel.PartIndex = (sel.PartIndex + 1) % len(song.Parts)
	sel.Leaderboard = nil
	sel.LeaderboardErr = ""
}

func CycleMusicVolume(sel *components.SongSelectData) {
	sel.MusicVolume = cfg.NextVolumeStep(sel.MusicVolume)
}

func CycleSFXVolume(sel *components.SongSelectData) {
	sel.SFXVolume = cfg.NextVolumeStep(sel.SFXVolume)
}

// ValidateSelection reports why the menu cannot start a run, or nil.
func ValidateSelection(sel *components.SongSelectData) error {
	if _, _, ok := SelectedSong(sel); !ok {
		return ErrNoSongs
	}
	email := strings.TrimSpace(sel.Email)
	name := strings.TrimSpace(sel.Name)
	if email == "" && name == "" {
		return nil
	}
	if email == "" || name == "" {
		return ErrIncompleteIdentity
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

// Offline reports whether runs started from sel skip submission.
func Offline(sel *components.SongSelectData) bool {
	return strings.TrimSpace(sel.Email) == "" && strings.TrimSpace(sel.Name) == ""
}

// SongLabel and PartLabel are the display names of the highlighted choice.
func SongLabel(sel *components.SongSelectData) string {
	song, _, ok := SelectedSong(sel)
	if !ok {
		return "-"
	}
	return displayName(song.DisplayName, song.Key)
}

func PartLabel(sel *components.SongSelectData) string {
	_, part, ok := SelectedSong(sel)
	if !ok {
		return "-"
	}
	return displayName(part.DisplayName, part.Key)
}

// VolumeLabel formats a volume step, "Muted" when muted.
func VolumeLabel(v float64, muted bool) string {
	if muted {
		return "Muted"
	}
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}

func displayName(name, key string) string {
	if name != "" {
		return name
	}
	return key
}
