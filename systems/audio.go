package systems

import (
	"github.com/automoto/songrunner/archetypes"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/yohamta/donburi"
)

// CreateAudio sets up the level's stems. The controlled stem, if present, is
// handed to the duck controller.
func CreateAudio(w donburi.World, tracks map[string]components.Track, controlled string, musicVol, sfxVol float64, muted bool) *donburi.Entry {
	entry := archetypes.Audio.Spawn(w)
	components.Audio.SetValue(entry, components.AudioData{
		Tracks:      tracks,
		Controlled:  controlled,
		MusicVolume: musicVol,
		SFXVolume:   sfxVol,
		Muted:       muted,
	})

	duck := components.DuckData{Level: cfg.Duck.FullLevel, Target: cfg.Duck.FullLevel}
	if t, ok := tracks[controlled]; ok {
		duck.Track = t
	}
	components.Duck.SetValue(entry, duck)
	return entry
}

// PlayTracks starts every stem together at the current duck level.
func PlayTracks(w donburi.World) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	vol := musicVolume(audio)
	for key, t := range audio.Tracks {
		if key != audio.Controlled {
			t.SetVolume(vol)
		}
	}
	applyDuck(entry)
	for _, t := range audio.Tracks {
		if !t.IsPlaying() {
			t.Play()
		}
	}
}

func PauseTracks(w donburi.World) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	for _, t := range components.Audio.Get(entry).Tracks {
		t.Pause()
	}
}

// QueueSFX queues a sound effect for the audio player system.
func QueueSFX(w donburi.World, id cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	if audio.Muted {
		return
	}
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// DrainSFX returns and clears the queued sound effects.
func DrainSFX(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	out := audio.PendingSFX
	audio.PendingSFX = nil
	return out
}

func musicVolume(audio *components.AudioData) float64 {
	if audio.Muted {
		return 0
	}
	return audio.MusicVolume
}
