package render

import (
	"sync"

	"github.com/automoto/songrunner/assets"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects up front to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Warn().Err(err).Int("sound", int(id)).Msg("could not preload sound effect")
		}
	}
}

// SetVolumes applies saved settings to menu music and sound effects.
func SetVolumes(music, sfx float64, muted bool) {
	globalMusicVolume = music
	globalSFXVolume = sfx
	globalMuted = muted
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

func effectiveMusicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

// UpdateAudio plays queued sound effects and runs the menu music fade-out.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	for _, id := range systems.DrainSFX(e.World) {
		PlaySFX(id)
	}
}

// PlaySFX plays a sound effect immediately.
func PlaySFX(soundID cfg.SoundID) {
	initGlobalAudio()
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("sound effect unavailable")
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping menu music; a no-op if it is already playing.
func PlayMusic(musicPath string) {
	initGlobalAudio()

	if globalMusicKey == musicPath && globalFadeTimer == 0 {
		return
	}
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadLoop(musicPath)
	if err != nil {
		log.Warn().Err(err).Str("path", musicPath).Msg("could not load music")
		return
	}

	player.SetVolume(effectiveMusicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
	globalFadeTimer = 0
}

// FadeOutMusic fades the menu music out over cfg.Audio.MenuFadeFrames ticks.
func FadeOutMusic() {
	if globalMusicPlayer == nil || globalFadeTimer > 0 {
		return
	}
	globalFadeStart = globalMusicPlayer.Volume()
	globalFadeDuration = cfg.Audio.MenuFadeFrames
	globalFadeTimer = cfg.Audio.MenuFadeFrames
}

// LoadStems opens a looping player for every track of a song's level. A
// stem that fails to load is left out; the run plays without it.
func LoadStems(song cfg.SongConfig) map[string]components.Track {
	initGlobalAudio()

	tracks := make(map[string]components.Track, len(song.Level.Tracks))
	for _, t := range song.Level.Tracks {
		player, err := globalAudioLoader.LoadLoop(t.Path)
		if err != nil {
			log.Warn().Err(err).Str("song", song.Key).Str("track", t.Key).Msg("could not load stem")
			continue
		}
		player.SetVolume(0)
		tracks[t.Key] = player
	}
	return tracks
}

// CloseStems stops and releases the level's stems.
func CloseStems(w donburi.World) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	for key, t := range data.Tracks {
		if p, ok := t.(*audio.Player); ok {
			if err := p.Close(); err != nil {
				log.Debug().Err(err).Str("track", key).Msg("closing stem")
			}
		}
	}
	data.Tracks = nil
	components.Duck.Get(entry).Track = nil
}
