package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/songrunner/app"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/events"
	"github.com/automoto/songrunner/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EndRunScene shows the result of a run while its submission settles
type EndRunScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	app          *app.Context
	choice       Choice
	result       components.EndScreenData
	once         sync.Once
	shouldReplay bool
	shouldGoBack bool
}

// NewEndRunScene creates the end screen for a finished run
func NewEndRunScene(sc SceneChanger, a *app.Context, choice Choice, result components.EndScreenData) *EndRunScene {
	return &EndRunScene{sceneChanger: sc, app: a, choice: choice, result: result}
}

func (es *EndRunScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()

	if es.shouldReplay {
		render.FadeOutMusic()
		es.sceneChanger.ChangeScene(NewLevelScene(es.sceneChanger, es.app, es.choice))
		return
	}
	if es.shouldGoBack {
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.app))
	}
}

func (es *EndRunScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EndRunScene) configure() {
	w := donburi.NewWorld()
	es.ecs = ecs.NewECS(w)

	entry := w.Entry(w.Create(components.EndScreen))
	components.EndScreen.SetValue(entry, es.result)

	es.ecs.AddSystem(render.UpdateInput)
	es.ecs.AddSystem(render.NewUpdateEndScreen(
		es.recordRun,
		func() { es.shouldReplay = true },
		func() { es.shouldGoBack = true },
	))
	es.ecs.AddSystem(render.UpdateAudio)

	es.ecs.AddRenderer(render.LayerDefault, render.DrawEndScreen)

	render.PlayMusic(cfg.Sound.MenuMusic)
}

const recentRuns = 5

// recordRun stores the run in the local history. A run left before its
// submission settled is kept with its local score.
func (es *EndRunScene) recordRun(end *components.EndScreenData) {
	summary := events.RunSummary{
		SongKey: end.SongKey,
		PartKey: end.PartKey,
		Score:   end.Report.LocalScore,
		Hits:    end.Hits,
		Misses:  end.Misses,
	}
	end.PersonalBest, end.HasBest = es.app.RecordRun(summary, end.Report)
	end.Recent = es.app.RecentScores(end.SongKey, end.PartKey, recentRuns)
}
