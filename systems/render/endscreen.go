package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/fonts"
	"github.com/automoto/songrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateEndScreen polls the run's submission and handles the end menu.
// record runs once: after the submission is no longer in flight, or when the
// player leaves before that.
func NewUpdateEndScreen(record func(*components.EndScreenData), onReplay, onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.EndScreen.First(e.World)
		if !ok {
			return
		}
		end := components.EndScreen.Get(entry)

		systems.PollReport(&end.Report)
		systems.RecordEndRun(end, false, record)

		input := getOrCreateInput(e)
		numOptions := int(components.EndMainMenu) + 1
		if input.Action(cfg.ActionMenuUp).JustPressed {
			end.SelectedOption = components.EndMenuOption((int(end.SelectedOption) - 1 + numOptions) % numOptions)
			PlaySFX(cfg.SoundMenuNavigate)
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			end.SelectedOption = components.EndMenuOption((int(end.SelectedOption) + 1) % numOptions)
			PlaySFX(cfg.SoundMenuNavigate)
		}

		if input.Action(cfg.ActionMenuBack).JustPressed {
			PlaySFX(cfg.SoundMenuSelect)
			systems.RecordEndRun(end, true, record)
			if onMenu != nil {
				onMenu()
			}
			return
		}
		if input.Action(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(cfg.SoundMenuSelect)
			systems.RecordEndRun(end, true, record)
			switch end.SelectedOption {
			case components.EndReplay:
				if onReplay != nil {
					onReplay()
				}
			case components.EndMainMenu:
				if onMenu != nil {
					onMenu()
				}
			}
		}
	}
}

// DrawEndScreen renders the run result, the submission status and the menu.
func DrawEndScreen(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.EndScreen.First(e.World)
	if !ok {
		return
	}
	end := components.EndScreen.Get(entry)

	width := float64(screen.Bounds().Dx())
	screen.Fill(cfg.EndRun.BackgroundColor)

	titleFont := fonts.Title.Get()
	title := cfg.EndRun.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.EndRun.TitleY), cfg.EndRun.TitleColor)

	bold := fonts.Bold.Get()
	regular := fonts.Regular.Get()

	lines := []string{
		fmt.Sprintf("%s - %s", end.SongName, end.PartName),
		fmt.Sprintf("Score %d", end.Report.DisplayScore()),
		fmt.Sprintf("Hits %d   Misses %d", end.Hits, end.Misses),
		reportLine(&end.Report),
	}
	if end.HasBest {
		lines = append(lines, fmt.Sprintf("Personal best %d", end.PersonalBest))
	}
	if len(end.Recent) > 0 {
		lines = append(lines, recentLine(end.Recent))
	}

	y := cfg.EndRun.ScoreY
	for i, line := range lines {
		face := regular
		if i == 1 {
			face = bold
		}
		text.Draw(screen, line, face, centerTextX(line, face, width), int(y), cfg.EndRun.TextColor)
		y += cfg.EndRun.MenuItemHeight
	}

	for i, option := range cfg.EndRun.MenuOptions {
		y := cfg.EndRun.MenuStartY + float64(i)*(cfg.EndRun.MenuItemHeight+cfg.EndRun.MenuItemGap)
		textColor := cfg.EndRun.TextColorNormal
		if components.EndMenuOption(i) == end.SelectedOption {
			textColor = cfg.EndRun.TextColorSelected
		}
		text.Draw(screen, option, bold, centerTextX(option, bold, width), int(y), textColor)
	}
}

func reportLine(r *components.ReportData) string {
	switch r.Status {
	case components.ReportPending:
		return "Submitting score..."
	case components.ReportSubmitted:
		return "Score submitted"
	case components.ReportFailed:
		return "Could not reach the scoring server, showing local score"
	case components.ReportSkipped:
		return "Playing offline"
	}
	return ""
}

func recentLine(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.Itoa(s)
	}
	return "Recent runs " + strings.Join(parts, "  ")
}
