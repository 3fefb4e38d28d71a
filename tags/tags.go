package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Note   = donburi.NewTag().SetName("Note")
	Ground = donburi.NewTag().SetName("Ground")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvNote   = "Note"
)
