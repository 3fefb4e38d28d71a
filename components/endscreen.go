package components

import "github.com/yohamta/donburi"

// EndMenuOption represents the choices on the end-of-run screen
type EndMenuOption int

const (
	EndReplay EndMenuOption = iota
	EndMainMenu
)

// EndScreenData is the state of the end-of-run screen. Report is the run's
// submission, still being polled while the screen is up.
type EndScreenData struct {
	SongKey        string
	PartKey        string
	SongName       string
	PartName       string
	Hits           int
	Misses         int
	Report         ReportData
	PersonalBest   int
	HasBest        bool
	Recent         []int // latest scores of this part, newest first
	Recorded       bool  // history written, settled or left early
	SelectedOption EndMenuOption
}

var EndScreen = donburi.NewComponentType[EndScreenData]()
