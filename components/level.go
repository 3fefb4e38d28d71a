package components

import (
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData describes the running level (singleton component).
type LevelData struct {
	Song         cfg.SongConfig
	Part         cfg.PartConfig
	Geometry     *leveldata.LevelGeometry
	ScreenWidth  int
	ScreenHeight int
	SkyOffset    float64
	GroundOffset float64
}

var Level = donburi.NewComponentType[LevelData]()
