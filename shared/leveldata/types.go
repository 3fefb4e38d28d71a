// Package leveldata provides TMX level parsing shared by the game and tools.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// LevelGeometry holds the collision-relevant data parsed from a TMX level file.
type LevelGeometry struct {
	Ground      []Rect
	PlayerSpawn SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is an axis-aligned solid area.
type Rect struct {
	X, Y, W, H float64
}

// Top returns the y of the rect's upper edge.
func (r Rect) Top() float64 { return r.Y }

// SpawnPoint is where the runner's feet start.
type SpawnPoint struct {
	X, Y float64
}

// GroundTop returns the highest ground surface under x, or ok=false when x has
// no ground beneath it.
func (g *LevelGeometry) GroundTop(x float64) (top float64, ok bool) {
	for _, r := range g.Ground {
		if x < r.X || x > r.X+r.W {
			continue
		}
		if !ok || r.Y < top {
			top = r.Y
			ok = true
		}
	}
	return top, ok
}
