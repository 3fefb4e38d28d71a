package render

import (
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/fonts"
	"github.com/automoto/songrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause handles pause toggle and menu navigation. Pausing freezes
// the run clock and the stems. onRestart and onQuit run on selection.
func NewUpdatePause(onRestart, onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if input.Action(cfg.ActionPause).JustPressed && !runOver(e) {
			if pause.IsPaused {
				resume(e, pause)
			} else {
				pause.IsPaused = true
				pause.SelectedOption = components.MenuResume
				systems.PauseRun(e.World)
			}
			return
		}

		if !pause.IsPaused {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MenuQuit) + 1
		if input.Action(cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(cfg.SoundMenuNavigate)
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(cfg.SoundMenuNavigate)
		}

		if input.Action(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(cfg.SoundMenuSelect)
			switch pause.SelectedOption {
			case components.MenuResume:
				resume(e, pause)
			case components.MenuRestart:
				if onRestart != nil {
					onRestart()
				}
			case components.MenuQuit:
				if onQuit != nil {
					onQuit()
				}
			}
		}
	}
}

func resume(e *ecs.ECS, pause *components.PauseData) {
	pause.IsPaused = false
	systems.ResumeRun(e.World)
	// The key that resumed must not also trigger a jump.
	input := getOrCreateInput(e)
	input.Previous[cfg.ActionJump] = true
}

func runOver(e *ecs.ECS) bool {
	entry, ok := components.Run.First(e.World)
	return ok && components.Run.Get(entry).Ended
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		text.Draw(screen, option, fontFace, centerTextX(option, fontFace, width), int(y+cfg.Pause.MenuItemHeight), textColor)
	}

	hint := pauseHint(getOrCreateInput(e).LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-16, cfg.Pause.TextColorNormal)
}

func pauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// IsPaused reports whether the pause menu is open.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	return ok && components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
