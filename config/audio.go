package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundNoteHit
	SoundNoteMiss
	SoundJump
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MenuFadeFrames  int // frames for menu music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
		MenuFadeFrames:  60,
	}

	Sound = SoundConfig{
		MenuMusic: "audio/music/menu.wav",
		SFXPaths: map[SoundID]string{
			SoundNoteHit:      "audio/sfx/note_hit.wav",
			SoundNoteMiss:     "audio/sfx/note_miss.wav",
			SoundJump:         "audio/sfx/jump.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundNoteMiss: 0.6,
		},
	}
}
