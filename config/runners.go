package config

import "image/color"

// RunnerLook is how the runner is drawn for a part's player sprite key.
type RunnerLook struct {
	Body   color.RGBA
	Accent color.RGBA // legs, and the hat when Hat is set
	Hat    bool
	Square bool // boxy head and body
}

// RunnerLooks maps a part's player_sprite key to its look.
var RunnerLooks = map[string]RunnerLook{
	"lucia-soprano": {
		Body:   color.RGBA{R: 250, G: 250, B: 255, A: 255},
		Accent: color.RGBA{R: 200, G: 30, B: 40, A: 255},
		Hat:    true,
	},
	"lucia-alto": {
		Body:   color.RGBA{R: 240, G: 240, B: 250, A: 255},
		Accent: color.RGBA{R: 60, G: 140, B: 70, A: 255},
	},
	"boy": {
		Body:   color.RGBA{R: 90, G: 140, B: 230, A: 255},
		Accent: color.RGBA{R: 40, G: 60, B: 120, A: 255},
	},
	"girl": {
		Body:   color.RGBA{R: 235, G: 120, B: 170, A: 255},
		Accent: color.RGBA{R: 120, G: 50, B: 90, A: 255},
	},
	"robot": {
		Body:   color.RGBA{R: 170, G: 175, B: 185, A: 255},
		Accent: color.RGBA{R: 255, G: 190, B: 40, A: 255},
		Square: true,
	},
}

// RunnerLookFor returns the look for a sprite key, falling back to the plain
// HUD player color for unknown or empty keys.
func RunnerLookFor(key string) RunnerLook {
	if look, ok := RunnerLooks[key]; ok {
		return look
	}
	return RunnerLook{Body: HUD.PlayerColor, Accent: HUD.PlayerColor}
}
