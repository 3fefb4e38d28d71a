package components

import "github.com/yohamta/donburi"

// AutoDestroyData removes an entity once armed and RemainingMs runs out.
type AutoDestroyData struct {
	Armed       bool
	RemainingMs float64
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// FlashData tracks a sprite tint (miss flash).
type FlashData struct {
	RemainingMs float64
	R, G, B     float32 // color multipliers (1,1,1 = white)
}

var Flash = donburi.NewComponentType[FlashData]()
