package scenes

import (
	"context"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/songrunner/app"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/network"
	"github.com/automoto/songrunner/persistence"
	"github.com/automoto/songrunner/shared/messages"
	"github.com/automoto/songrunner/systems"
	"github.com/automoto/songrunner/systems/render"
	"github.com/automoto/songrunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const leaderboardTimeout = 5 * time.Second

// MenuScene is the song selection menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	app          *app.Context
	menuUI       *ui.SongSelectUI
	selectData   *components.SongSelectData
	once         sync.Once
	shouldStart  bool
	shouldQuit   bool
	leaderboard  network.Latest[[]messages.LeaderboardEntry]
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, a *app.Context) *MenuScene {
	return &MenuScene{sceneChanger: sc, app: a}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.menuUI.Update()
	render.SetVolumes(ms.selectData.MusicVolume, ms.selectData.SFXVolume, ms.selectData.Muted)

	// Apply fetch results on the main goroutine
	if res, ok := ms.leaderboard.Take(); ok {
		ms.selectData.Leaderboard = res.Value
		ms.selectData.LeaderboardErr = ""
		if res.Err != nil {
			ms.selectData.LeaderboardErr = res.Err.Error()
		}
		ms.menuUI.UpdateUI()
	}

	if ms.shouldQuit {
		ms.sceneChanger.Quit()
		return
	}
	if ms.shouldStart {
		ms.shouldStart = false
		ms.start()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system
	ms.ecs.AddSystem(render.UpdateAudio)

	settings := ms.app.Store.Settings()
	ms.selectData = &components.SongSelectData{
		MusicVolume: settings.MusicVolume,
		SFXVolume:   settings.SFXVolume,
		Muted:       settings.Muted,
	}
	last, _ := ms.app.Store.Selection()
	systems.InitSongSelect(ms.selectData, ms.app.Registry.Songs(), last.Song, last.Part)
	if id, err := ms.app.Store.Identity(); err == nil {
		ms.selectData.Email = id.Email
		ms.selectData.Name = id.Name
	}

	ms.menuUI = ui.NewSongSelectUI(
		ms.selectData,
		func() { ms.shouldStart = true },
		func() { ms.shouldQuit = true },
		func() { ms.fetchLeaderboard() },
	)

	render.SetVolumes(settings.MusicVolume, settings.SFXVolume, settings.Muted)
	render.PlayMusic(cfg.Sound.MenuMusic)

	ms.fetchLeaderboard()
}

// start saves the menu state and enters the level.
func (ms *MenuScene) start() {
	sel := ms.selectData
	song, part, ok := systems.SelectedSong(sel)
	if !ok {
		ms.menuUI.SetStatus(systems.ErrNoSongs.Error())
		return
	}

	settings := persistence.Settings{
		MusicVolume: sel.MusicVolume,
		SFXVolume:   sel.SFXVolume,
		Muted:       sel.Muted,
	}
	if err := ms.app.Store.SaveSettings(settings); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
	}
	if err := ms.app.Store.SaveSelection(persistence.Selection{Song: song.Key, Part: part.Key}); err != nil {
		log.Warn().Err(err).Msg("could not save song selection")
	}
	if !systems.Offline(sel) {
		if err := ms.app.Store.SaveIdentity(persistence.Identity{Email: sel.Email, Name: sel.Name}); err != nil {
			log.Warn().Err(err).Msg("could not save player identity")
		}
	}

	render.PlaySFX(cfg.SoundMenuSelect)
	ms.sceneChanger.ChangeScene(NewLevelScene(ms.sceneChanger, ms.app, Choice{
		SongKey:  song.Key,
		PartKey:  part.Key,
		Email:    sel.Email,
		Name:     sel.Name,
		Settings: settings,
	}))
}

func (ms *MenuScene) fetchLeaderboard() {
	seq := ms.leaderboard.Begin()
	if ms.app.Scoring == nil {
		ms.selectData.Leaderboard = nil
		ms.selectData.LeaderboardErr = "offline"
		return
	}
	song, part, ok := systems.SelectedSong(ms.selectData)
	if !ok {
		return
	}
	go ms.queryLeaderboard(seq, song.Key, part.Key)
}

func (ms *MenuScene) queryLeaderboard(seq int, songKey, partKey string) {
	ctx, cancel := context.WithTimeout(ms.app.Base(), leaderboardTimeout)
	defer cancel()

	entries, err := ms.app.Scoring.Leaderboard(ctx, songKey, partKey)
	if err != nil {
		log.Warn().Err(err).Str("song", songKey).Str("part", partKey).Msg("leaderboard query failed")
	}

	ms.leaderboard.Deliver(seq, entries, err)
}
