package config

// AnimationDef is a frame range played at Speed ticks per frame.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// Animation keys
const (
	AnimRun  = "run"
	AnimJump = "jump"
	AnimNote = "note"
)

// Animations maps an animation key to its frame definition. The runner's
// stride and the notes' pulse are drawn procedurally from the current frame.
var Animations = map[string]AnimationDef{
	AnimRun:  {First: 0, Last: 7, Step: 1, Speed: 5},
	AnimJump: {First: 0, Last: 2, Step: 1, Speed: 10},
	AnimNote: {First: 0, Last: 11, Step: 1, Speed: 3},
}
