package render

import (
	"image/color"
	"math"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// skyPalette is the vertical gradient plus the far band color for a sky key.
type skyPalette struct {
	Top, Bottom, Band color.RGBA
}

var skyPalettes = map[string]skyPalette{
	"snow-mountain": {
		Top:    color.RGBA{R: 60, G: 90, B: 150, A: 255},
		Bottom: color.RGBA{R: 190, G: 215, B: 240, A: 255},
		Band:   color.RGBA{R: 235, G: 240, B: 250, A: 255},
	},
	"clouds-white": {
		Top:    color.RGBA{R: 70, G: 150, B: 220, A: 255},
		Bottom: color.RGBA{R: 170, G: 215, B: 245, A: 255},
		Band:   color.RGBA{R: 250, G: 250, B: 255, A: 255},
	},
}

const (
	skyStrips    = 24
	bandSpacing  = 320.0
	bandWidth    = 220.0
	bandHeight   = 90.0
	brickWidth   = 48.0
	brickHeight  = 24.0
	brickLineGap = 2.0
)

var brickLineColor = color.RGBA{R: 80, G: 45, B: 30, A: 255}

// DrawLevel renders the scrolling sky and the ground strips.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	drawSky(screen, level)
	drawGround(screen, level)
}

func drawSky(screen *ebiten.Image, level *components.LevelData) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	palette, ok := skyPalettes[level.Song.Level.Sky]
	if !ok {
		screen.Fill(cfg.HUD.SkyColor)
		return
	}

	stripH := height / skyStrips
	for i := 0; i < skyStrips; i++ {
		t := float64(i) / float64(skyStrips-1)
		vector.FillRect(screen, 0, float32(i)*stripH, width, stripH+1, lerpColor(palette.Top, palette.Bottom, t), false)
	}

	// Far band: rounded shapes that scroll with the sky offset
	baseY := float32(groundTop(level, float64(height))) - bandHeight
	start := -math.Mod(level.SkyOffset, bandSpacing)
	for x := start - bandSpacing; x < float64(width)+bandSpacing; x += bandSpacing {
		cx := float32(x + bandWidth/2)
		vector.FillCircle(screen, cx, baseY+bandHeight, bandWidth/2, palette.Band, true)
		vector.FillCircle(screen, cx-bandWidth/4, baseY+bandHeight*0.7, bandWidth/4, palette.Band, true)
	}
}

func drawGround(screen *ebiten.Image, level *components.LevelData) {
	if level.Geometry == nil {
		return
	}
	for _, r := range level.Geometry.Ground {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.HUD.GroundColor, false)

		if level.Song.Level.Ground != "bricks" {
			continue
		}
		offset := math.Mod(level.GroundOffset, brickWidth)
		row := 0
		for y := r.Y; y < r.Y+r.H; y += brickHeight {
			vector.FillRect(screen, float32(r.X), float32(y), float32(r.W), brickLineGap, brickLineColor, false)
			stagger := 0.0
			if row%2 == 1 {
				stagger = brickWidth / 2
			}
			for x := r.X - offset + stagger; x < r.X+r.W; x += brickWidth {
				if x < r.X {
					continue
				}
				vector.FillRect(screen, float32(x), float32(y), brickLineGap, float32(min(brickHeight, r.Y+r.H-y)), brickLineColor, false)
			}
			row++
		}
	}
}

func groundTop(level *components.LevelData, fallback float64) float64 {
	if level.Geometry == nil {
		return fallback
	}
	if top, ok := level.Geometry.GroundTop(cfg.PlayerX(level.ScreenWidth)); ok {
		return top
	}
	return fallback
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
