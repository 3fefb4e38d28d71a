package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/songrunner/app"
	"github.com/automoto/songrunner/assets"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/systems"
	"github.com/automoto/songrunner/systems/factory"
	"github.com/automoto/songrunner/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene plays one song part: it owns the run from the pre-roll to the
// end-of-run callback.
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	app          *app.Context
	choice       Choice
	song         cfg.SongConfig
	part         cfg.PartConfig
	once         sync.Once

	failed       bool
	summary      *events.RunSummary
	shouldReload bool
	shouldQuit   bool
}

// NewLevelScene creates a level for the chosen song part
func NewLevelScene(sc SceneChanger, a *app.Context, choice Choice) *LevelScene {
	return &LevelScene{sceneChanger: sc, app: a, choice: choice}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)

	if ls.failed {
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.app))
		return
	}

	ls.ecs.Update()

	switch {
	case ls.shouldReload:
		ls.leave()
		ls.sceneChanger.ChangeScene(NewLevelScene(ls.sceneChanger, ls.app, ls.choice))
	case ls.shouldQuit:
		ls.leave()
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.app))
	case ls.summary != nil:
		ls.finish()
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil || ls.failed {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	render.PreloadAllSFX()

	song, part, err := ls.app.Registry.Lookup(ls.choice.SongKey, ls.choice.PartKey)
	if err != nil {
		ls.fail(err)
		return
	}
	songMap, err := assets.LoadSongMap(song, part)
	if err != nil {
		ls.fail(err)
		return
	}
	geom, err := assets.LoadGeometry(song)
	if err != nil {
		ls.fail(err)
		return
	}
	ls.song, ls.part = song, part

	w := donburi.NewWorld()
	ls.ecs = ecs.NewECS(w)

	// Systems that always run
	ls.ecs.AddSystem(render.UpdateInput)
	ls.ecs.AddSystem(render.NewUpdatePause(
		func() { ls.shouldReload = true },
		func() { ls.shouldQuit = true },
	))
	ls.ecs.AddSystem(render.UpdateRunnerInput)

	// Gameplay advances on a fixed step; the run clock freezes while paused
	stepMs := 1000 / float64(cfg.C.TPS)
	ls.ecs.AddSystem(func(e *ecs.ECS) {
		systems.Tick(e.World, stepMs)
	})

	// Audio runs last so sounds queued this frame play this frame
	ls.ecs.AddSystem(render.UpdateAudio)

	ls.ecs.AddRenderer(render.LayerDefault, render.DrawLevel)
	ls.ecs.AddRenderer(render.LayerDefault, render.DrawNotes)
	ls.ecs.AddRenderer(render.LayerDefault, render.DrawPlayer)
	ls.ecs.AddRenderer(render.LayerDefault, render.DrawHUD)
	ls.ecs.AddRenderer(render.LayerDefault, render.DrawDebug)
	ls.ecs.AddRenderer(render.LayerDefault, render.DrawPause)

	factory.CreateLevel(w, song, part, geom, cfg.C.Width, cfg.C.Height)

	settings := ls.choice.Settings
	render.SetVolumes(settings.MusicVolume, settings.SFXVolume, settings.Muted)
	render.FadeOutMusic()
	systems.CreateAudio(w, render.LoadStems(song), part.ControlledTrack, settings.MusicVolume, settings.SFXVolume, settings.Muted)

	events.RunEnded.Subscribe(w, func(_ donburi.World, summary events.RunSummary) {
		ls.summary = &summary
	})

	err = systems.StartRun(w, systems.RunSetup{
		SongKey:   song.Key,
		PartKey:   part.Key,
		Map:       songMap,
		Email:     ls.choice.Email,
		Name:      ls.choice.Name,
		Submitter: ls.app.Submitter(),
		Ctx:       ls.app.Base(),
		FrameSeed: uint64(time.Now().UnixNano()),
	})
	if err != nil {
		render.CloseStems(w)
		ls.fail(err)
	}
}

func (ls *LevelScene) fail(err error) {
	log.Error().Err(err).
		Str("song", ls.choice.SongKey).
		Str("part", ls.choice.PartKey).
		Msg("could not start level, returning to menu")
	ls.failed = true
}

// leave abandons the run and releases the stems.
func (ls *LevelScene) leave() {
	systems.CancelRun(ls.ecs.World)
	render.CloseStems(ls.ecs.World)
}

// finish hands the result and the in-flight submission to the end screen.
func (ls *LevelScene) finish() {
	var report components.ReportData
	if entry, ok := components.Report.First(ls.ecs.World); ok {
		report = *components.Report.Get(entry)
	}
	render.CloseStems(ls.ecs.World)

	ls.sceneChanger.ChangeScene(NewEndRunScene(ls.sceneChanger, ls.app, ls.choice, components.EndScreenData{
		SongKey:  ls.song.Key,
		PartKey:  ls.part.Key,
		SongName: displayName(ls.song.DisplayName, ls.song.Key),
		PartName: displayName(ls.part.DisplayName, ls.part.Key),
		Hits:     ls.summary.Hits,
		Misses:   ls.summary.Misses,
		Report:   report,
	}))
}

func displayName(name, key string) string {
	if name != "" {
		return name
	}
	return key
}
