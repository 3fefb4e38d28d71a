package components

import "github.com/yohamta/donburi"

// PlayerData is the auto-runner's input-driven state.
type PlayerData struct {
	JumpRequested bool // set by input, consumed by the player system
	Jumps         int
}

var Player = donburi.NewComponentType[PlayerData]()
