package config

// ActionID represents a logical game action. Key and gamepad bindings live
// with the renderer so this package stays free of ebitengine.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds input tuning
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}
