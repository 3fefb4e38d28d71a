package factory

import (
	"github.com/automoto/songrunner/archetypes"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/leveldata"
	"github.com/yohamta/donburi"
)

const spaceCellSize = 32

// CreateLevel builds the static part of a level: its descriptor, collision
// space, ground and runner.
func CreateLevel(w donburi.World, song cfg.SongConfig, part cfg.PartConfig, geom *leveldata.LevelGeometry, screenWidth, screenHeight int) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Song:         song,
		Part:         part,
		Geometry:     geom,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	})

	spaceW := max(screenWidth, geom.MapWidth) + int(cfg.Notes.SpawnMargin+cfg.Notes.Width)*2
	spaceH := max(screenHeight, geom.MapHeight)
	CreateSpace(w, spaceW, spaceH, spaceCellSize, spaceCellSize)

	for _, r := range geom.Ground {
		CreateGround(w, r.X, r.Y, r.W, r.H)
	}

	x := cfg.PlayerX(screenWidth)
	feetY := geom.PlayerSpawn.Y
	if top, ok := geom.GroundTop(x + cfg.Player.CollisionWidth/2); ok {
		feetY = top
	}
	CreatePlayer(w, x, feetY)

	return level
}
