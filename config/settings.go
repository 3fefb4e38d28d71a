package config

// SettingsMenuConfig contains the menu's volume controls
type SettingsMenuConfig struct {
	VolumeSteps []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}

// NextVolumeStep returns the step after v, wrapping to the first.
func NextVolumeStep(v float64) float64 {
	steps := SettingsMenu.VolumeSteps
	for _, s := range steps {
		if s > v+1e-9 {
			return s
		}
	}
	return steps[0]
}
