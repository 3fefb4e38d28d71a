package config

import "image/color"

// NoteConfig contains note travel and judgment configuration values
type NoteConfig struct {
	Speed          float64   // px per second, leftward
	SpawnMargin    float64   // px beyond the right screen edge where notes spawn
	OffscreenX     float64   // notes left of this x are missed even if the player is further left
	MissGraceMs    float64   // how long a missed note stays visible before disposal
	Width          float64   // collision box
	Height         float64   // collision box
	LaneY          []float64 // y position for lanes 1..4
	FrameVariants  int       // number of visual frames in the note sheet
	EpilogueMs     float64   // end-of-run delay after the last note's hit time
	PreRollMs      float64   // gap between level entry and music start
	MaxFrameStepMs float64   // clamp for a single clock advance (frame hitch)
}

// ScoringConfig contains run scoring values
type ScoringConfig struct {
	HitPoints int
}

// DuckConfig contains controlled-track fade values
type DuckConfig struct {
	DuckMs    float64 // fade to silence on miss
	UnduckMs  float64 // fade back to full on hit
	FullLevel float64
}

// PlayerConfig contains the runner's movement values
type PlayerConfig struct {
	XRatio          float64 // player x as a fraction of screen width
	JumpSpeed       float64 // px per frame, upward
	Gravity         float64 // px per frame^2
	MaxFallSpeed    float64
	CollisionWidth  float64
	CollisionHeight float64
}

// NetworkConfig contains scoring service values
type NetworkConfig struct {
	ScoringURL     string
	SubmitTimeout  float64 // seconds
	MaxResponseLen int64
}

// EndRunConfig contains end-of-run screen configuration values
type EndRunConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColor         color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// HUDConfig contains in-level HUD values
type HUDConfig struct {
	Margin      float64
	TextColor   color.RGBA
	HitColor    color.RGBA
	MissColor   color.RGBA
	NoteColors  []color.RGBA
	PlayerColor color.RGBA
	GroundColor color.RGBA
	SkyColor    color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int

	MaxPanicFrames int // panicking frames in a row before the game gives up
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to the level
	Song        string
	Part        string
	DrawHitbox  bool
	VerboseLogs bool
}

// Global configuration instances
var C *Config
var Notes NoteConfig
var Scoring ScoringConfig
var Duck DuckConfig
var Player PlayerConfig
var Network NetworkConfig
var EndRun EndRunConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,

		MaxPanicFrames: 120,
	}

	Notes = NoteConfig{
		Speed:          200,
		SpawnMargin:    50,
		OffscreenX:     -64,
		MissGraceMs:    2000,
		Width:          48,
		Height:         48,
		LaneY:          []float64{100, 200, 300, 400},
		FrameVariants:  4,
		EpilogueMs:     2000,
		PreRollMs:      1000,
		MaxFrameStepMs: 100,
	}

	Scoring = ScoringConfig{
		HitPoints: 100,
	}

	Duck = DuckConfig{
		DuckMs:    300,
		UnduckMs:  150,
		FullLevel: 1.0,
	}

	Player = PlayerConfig{
		XRatio:          1.0 / 6.0,
		JumpSpeed:       21.0,
		Gravity:         0.6,
		MaxFallSpeed:    18.0,
		CollisionWidth:  64,
		CollisionHeight: 160,
	}

	Network = NetworkConfig{
		ScoringURL:     "http://localhost:8080",
		SubmitTimeout:  5,
		MaxResponseLen: 1 << 16,
	}

	EndRun = EndRunConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 20, B: 70, A: 255},
		TitleColor:        White,
		TextColor:         White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "Level Complete!",
		TitleY:            160,
		ScoreY:            260,
		MenuStartY:        440,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Replay", "Main Menu"},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Resume", "Restart", "Quit to Menu"},
	}

	HUD = HUDConfig{
		Margin:      20,
		TextColor:   White,
		HitColor:    LightGreen,
		MissColor:   LightRed,
		NoteColors:  []color.RGBA{Yellow, Orange, Purple, LightBlue},
		PlayerColor: color.RGBA{R: 230, G: 230, B: 250, A: 255},
		GroundColor: color.RGBA{R: 120, G: 70, B: 50, A: 255},
		SkyColor:    color.RGBA{R: 93, G: 172, B: 216, A: 255},
	}
}

// NoteSpawnX returns the x position where notes enter for the given screen width.
func NoteSpawnX(screenWidth int) float64 {
	return float64(screenWidth) + Notes.SpawnMargin
}

// PlayerX returns the runner's fixed x position for the given screen width.
func PlayerX(screenWidth int) float64 {
	return float64(screenWidth) * Player.XRatio
}
