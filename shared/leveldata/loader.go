package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	groundGroup = "Ground"
	spawnGroup  = "PlayerSpawn"
)

var ErrNoGround = errors.New("level has no ground")

// LoadGeometry parses a TMX file and returns its ground rectangles and player
// spawn. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadGeometry(fsys fs.FS, tmxPath string) (*LevelGeometry, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelGeometry{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groundGroup:
			for _, o := range og.Objects {
				data.Ground = append(data.Ground, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case spawnGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
				spawnFound = true
			}
		}
	}

	if len(data.Ground) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoGround)
	}

	// Sort ground left-to-right for stable lookups
	sort.Slice(data.Ground, func(i, j int) bool {
		return data.Ground[i].X < data.Ground[j].X
	})

	if !spawnFound {
		// Default: a sixth of the way in, standing on the first ground rect
		data.PlayerSpawn = SpawnPoint{X: float64(data.MapWidth) / 6, Y: data.Ground[0].Y}
	}

	return data, nil
}
