package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
