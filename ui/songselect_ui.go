package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/songrunner/components"
	"github.com/automoto/songrunner/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const leaderboardRows = 5

// SongSelectUI holds the ebitenui interface for the song selection menu
type SongSelectUI struct {
	UI     *ebitenui.UI
	Select *components.SongSelectData

	// Callbacks
	OnStart       func()
	OnQuit        func()
	OnSongChanged func() // song or part changed; refetch the leaderboard

	// Widget references for updates
	songLabel        *widget.Label
	partLabel        *widget.Label
	emailInput       *widget.TextInput
	nameInput        *widget.TextInput
	musicButton      *widget.Button
	sfxButton        *widget.Button
	muteButton       *widget.Button
	leaderboardLabel *widget.Label
	statusLabel      *widget.Label
	startButton      *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewSongSelectUI creates the menu for the given selection state
func NewSongSelectUI(sel *components.SongSelectData, onStart, onQuit, onSongChanged func()) *SongSelectUI {
	sui := &SongSelectUI{
		Select:        sel,
		OnStart:       onStart,
		OnQuit:        onQuit,
		OnSongChanged: onSongChanged,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SongSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   36,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (sui *SongSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SONG RUNNER", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(sui.buildSongContainer())
	contentContainer.AddChild(sui.buildIdentityContainer())
	contentContainer.AddChild(sui.buildAudioContainer())

	sui.leaderboardLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	contentContainer.AddChild(sui.leaderboardLabel)

	contentContainer.AddChild(sui.buildButtonsContainer())

	sui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	contentContainer.AddChild(sui.statusLabel)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SongSelectUI) buildSongContainer() *widget.Container {
	container := sui.panel()

	sui.songLabel = sui.valueLabel(systems.SongLabel(sui.Select))
	container.AddChild(sui.settingRow("Song:", sui.songLabel, "Change", func() {
		systems.CycleSong(sui.Select)
		sui.songChanged()
	}))

	sui.partLabel = sui.valueLabel(systems.PartLabel(sui.Select))
	container.AddChild(sui.settingRow("Part:", sui.partLabel, "Change", func() {
		systems.CyclePart(sui.Select)
		sui.songChanged()
	}))

	return container
}

func (sui *SongSelectUI) buildIdentityContainer() *widget.Container {
	container := sui.panel()

	container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Leave both blank to play offline", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	sui.emailInput = sui.textInput("you@example.com")
	sui.emailInput.SetText(sui.Select.Email)
	container.AddChild(sui.inputRow("Email:", sui.emailInput))

	sui.nameInput = sui.textInput("Your name")
	sui.nameInput.SetText(sui.Select.Name)
	container.AddChild(sui.inputRow("Name:", sui.nameInput))

	return container
}

func (sui *SongSelectUI) buildAudioContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	sui.musicButton = sui.button("", 170, func() {
		systems.CycleMusicVolume(sui.Select)
		sui.UpdateUI()
	})
	container.AddChild(sui.musicButton)

	sui.sfxButton = sui.button("", 170, func() {
		systems.CycleSFXVolume(sui.Select)
		sui.UpdateUI()
	})
	container.AddChild(sui.sfxButton)

	sui.muteButton = sui.button("", 110, func() {
		sui.Select.Muted = !sui.Select.Muted
		sui.UpdateUI()
	})
	container.AddChild(sui.muteButton)

	return container
}

func (sui *SongSelectUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 36)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnQuit != nil {
				sui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	sui.startButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 36)),
		widget.ButtonOpts.Image(sui.startButtonImage()),
		widget.ButtonOpts.Text("START", &sui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.SyncInputs()
			if err := systems.ValidateSelection(sui.Select); err != nil {
				sui.SetStatus(err.Error())
				return
			}
			if sui.OnStart != nil {
				sui.OnStart()
			}
		}),
	)
	container.AddChild(sui.startButton)

	return container
}

func (sui *SongSelectUI) panel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (sui *SongSelectUI) valueLabel(s string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
}

func (sui *SongSelectUI) settingRow(title string, value *widget.Label, action string, onClick func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	row.AddChild(value)
	row.AddChild(sui.button(action, 90, onClick))
	return row
}

func (sui *SongSelectUI) inputRow(title string, input *widget.TextInput) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	row.AddChild(input)
	return row
}

func (sui *SongSelectUI) textInput(placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&sui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (sui *SongSelectUI) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SongSelectUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SongSelectUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SongSelectUI) songChanged() {
	sui.UpdateUI()
	if sui.OnSongChanged != nil {
		sui.OnSongChanged()
	}
}

// SyncInputs copies the text fields into the selection state.
func (sui *SongSelectUI) SyncInputs() {
	sui.Select.Email = strings.TrimSpace(sui.emailInput.GetText())
	sui.Select.Name = strings.TrimSpace(sui.nameInput.GetText())
}

// SetStatus shows a message under the buttons.
func (sui *SongSelectUI) SetStatus(msg string) {
	sui.statusLabel.Label = msg
}

// UpdateUI updates all UI elements to reflect the current selection
func (sui *SongSelectUI) UpdateUI() {
	sel := sui.Select

	sui.songLabel.Label = systems.SongLabel(sel)
	sui.partLabel.Label = systems.PartLabel(sel)

	if t := sui.musicButton.Text(); t != nil {
		t.Label = "Music " + systems.VolumeLabel(sel.MusicVolume, sel.Muted)
	}
	if t := sui.sfxButton.Text(); t != nil {
		t.Label = "Effects " + systems.VolumeLabel(sel.SFXVolume, sel.Muted)
	}
	if t := sui.muteButton.Text(); t != nil {
		if sel.Muted {
			t.Label = "Unmute"
		} else {
			t.Label = "Mute"
		}
	}

	sui.leaderboardLabel.Label = leaderboardText(sel)
	sui.startButton.GetWidget().Disabled = len(sel.Songs) == 0
}

func leaderboardText(sel *components.SongSelectData) string {
	if sel.LeaderboardErr != "" {
		return "Leaderboard unavailable: " + sel.LeaderboardErr
	}
	if len(sel.Leaderboard) == 0 {
		return "No scores yet"
	}
	var b strings.Builder
	b.WriteString("Top scores")
	for i, entry := range sel.Leaderboard {
		if i == leaderboardRows {
			break
		}
		fmt.Fprintf(&b, "\n%d. %s  %d", i+1, entry.Name, entry.Score)
	}
	return b.String()
}

// Update calls the UI's Update method
func (sui *SongSelectUI) Update() {
	sui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
