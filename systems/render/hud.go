package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarHeight = 6
	hudLineGap   = 26
)

var hudBarBackground = color.RGBA{40, 40, 40, 200}

// DrawHUD renders score, hit and miss counts, the song and part, and a
// progress bar along the bottom edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	runEntry, ok := components.Run.First(e.World)
	if !ok {
		return
	}
	run := components.Run.Get(runEntry)
	clock := components.Clock.Get(runEntry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	margin := cfg.HUD.Margin

	bold := fonts.Bold.Get()
	regular := fonts.Regular.Get()

	y := int(margin) + hudLineGap
	text.Draw(screen, fmt.Sprintf("Score %d", run.Score), bold, int(margin), y, cfg.HUD.TextColor)
	y += hudLineGap
	text.Draw(screen, fmt.Sprintf("Hits %d", run.Hits), regular, int(margin), y, cfg.HUD.HitColor)
	text.Draw(screen, fmt.Sprintf("Misses %d", run.Misses), regular, int(margin)+110, y, cfg.HUD.MissColor)

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		title := songTitle(level.Song)
		part := partTitle(level.Part)
		text.Draw(screen, title, bold, rightTextX(title, bold, width, margin), int(margin)+hudLineGap, cfg.HUD.TextColor)
		text.Draw(screen, part, regular, rightTextX(part, regular, width, margin), int(margin)+2*hudLineGap, cfg.HUD.TextColor)
	}

	now := clock.Now()
	if !run.Started && !run.Ended {
		msg := "Get ready"
		title := fonts.Title.Get()
		text.Draw(screen, msg, title, centerTextX(msg, title, width), int(height/3), cfg.HUD.TextColor)
	}

	progress := 0.0
	if span := run.EndMs - run.MusicStartMs; span > 0 {
		progress = clamp01((now - run.MusicStartMs) / span)
	}
	barY := float32(height - hudBarHeight)
	vector.FillRect(screen, 0, barY, float32(width), hudBarHeight, hudBarBackground, false)
	vector.FillRect(screen, 0, barY, float32(width*progress), hudBarHeight, cfg.HUD.HitColor, false)
}

func songTitle(song cfg.SongConfig) string {
	if song.DisplayName != "" {
		return song.DisplayName
	}
	return song.Key
}

func partTitle(part cfg.PartConfig) string {
	if part.DisplayName != "" {
		return part.DisplayName
	}
	return part.Key
}
