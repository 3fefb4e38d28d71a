package main

import (
	"context"
	"errors"
	"image"
	"os"
	"time"

	"github.com/automoto/songrunner/app"
	"github.com/automoto/songrunner/assets"
	"github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/fonts"
	"github.com/automoto/songrunner/history"
	"github.com/automoto/songrunner/network"
	"github.com/automoto/songrunner/persistence"
	"github.com/automoto/songrunner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	quit   bool
	guard  app.FrameGuard
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(a *app.Context) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		guard:  app.FrameGuard{Limit: config.C.MaxPanicFrames},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewLevelScene(g, a, skipMenuChoice(a))
	} else {
		g.scene = scenes.NewMenuScene(g, a)
	}

	return g
}

// skipMenuChoice plays the song part named on the command line with the
// saved identity and settings.
func skipMenuChoice(a *app.Context) scenes.Choice {
	choice := scenes.Choice{
		SongKey:  config.Debug.Song,
		PartKey:  config.Debug.Part,
		Settings: a.Store.Settings(),
	}
	if id, err := a.Store.Identity(); err == nil {
		choice.Email = id.Email
		choice.Name = id.Name
	}
	return choice
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	return g.guard.Run(g.scene.Update)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	cli := kingpin.New("songrunner", "Run through a song, collecting its notes in time with the music.")
	scoringURL := cli.Flag("scoring-url", "Scoring service base URL, overrides the tuning file").String()
	offline := cli.Flag("offline", "Never submit runs").Bool()
	song := cli.Flag("song", "Song key to play with --skip-menu").Default("lucia").String()
	part := cli.Flag("part", "Part key to play with --skip-menu").Default("soprano").String()
	skipMenu := cli.Flag("skip-menu", "Start the level directly").Bool()
	debugFlag := cli.Flag("debug", "Debug logging and hitbox overlay").Short('d').Bool()
	tuningPath := cli.Flag("config", "YAML file overriding gameplay tuning").ExistingFile()
	historyPath := cli.Flag("history", "SQLite file for local run history").Default("songrunner-history.db").String()
	assetDir := cli.Flag("assets", "Read assets from this directory instead of the embedded ones").ExistingDir()
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *tuningPath).Msg("could not load tuning")
		}
		tuning.Apply()
	}
	if *scoringURL != "" {
		config.Network.ScoringURL = *scoringURL
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Song = *song
	config.Debug.Part = *part
	config.Debug.DrawHitbox = *debugFlag
	config.Debug.VerboseLogs = *debugFlag

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("could not load fonts")
	}
	if *assetDir != "" {
		if err := assets.UseDir(*assetDir); err != nil {
			log.Fatal().Err(err).Msg("could not use asset directory")
		}
	}

	registry, err := assets.LoadRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load song registry")
	}

	a := &app.Context{
		Ctx:      context.Background(),
		Registry: registry,
		Store:    persistence.Open("songrunner"),
	}
	if h, err := history.Open(*historyPath); err != nil {
		log.Warn().Err(err).Str("path", *historyPath).Msg("run history disabled")
	} else {
		a.History = h
	}
	defer a.Close()

	if !*offline && config.Network.ScoringURL != "" {
		a.Scoring = network.NewClient(config.Network.ScoringURL)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Song Runner")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(a)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game stopped")
	}
}
