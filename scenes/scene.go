package scenes

import (
	"github.com/automoto/songrunner/persistence"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Choice is what the menu hands to a level: the song part to play, who is
// playing it and how loud.
type Choice struct {
	SongKey  string
	PartKey  string
	Email    string // empty plays offline
	Name     string
	Settings persistence.Settings
}
