package components

import (
	cfg "github.com/automoto/songrunner/config"
	"github.com/yohamta/donburi"
)

// Volume is anything whose playback volume can be set, typically an
// *audio.Player.
type Volume interface {
	SetVolume(v float64)
	Volume() float64
}

// Track is one playing audio stem.
type Track interface {
	Volume
	Play()
	Pause()
	IsPlaying() bool
}

// AudioData stores the level's audio state (singleton component)
type AudioData struct {
	Tracks      map[string]Track // stems keyed by track key
	Controlled  string           // key of the stem that reflects performance
	MusicVolume float64          // 0.0 - 1.0
	SFXVolume   float64          // 0.0 - 1.0
	Muted       bool
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
