package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DuckData is the controlled-track fade state (singleton component).
type DuckData struct {
	Ducked bool
	Level  float64 // current fade level, 0..1, multiplied by music volume
	Target float64
	Tween  *gween.Tween // nil when no fade is running
	Track  Volume       // nil plays silently
	Fades  int          // fade commands issued
}

var Duck = donburi.NewComponentType[DuckData]()
