package systems

import (
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// DuckTrack fades the controlled track out. It does nothing while the track
// is already ducked.
func DuckTrack(w donburi.World) bool {
	duck, ok := duckState(w)
	if !ok || duck.Ducked {
		return false
	}
	duck.Ducked = true
	fadeTo(duck, 0, cfg.Duck.DuckMs)
	return true
}

// UnduckTrack fades the controlled track back in. It does nothing unless the
// track is ducked.
func UnduckTrack(w donburi.World) bool {
	duck, ok := duckState(w)
	if !ok || !duck.Ducked {
		return false
	}
	duck.Ducked = false
	fadeTo(duck, cfg.Duck.FullLevel, cfg.Duck.UnduckMs)
	return true
}

// fadeTo replaces any running fade with one starting from the current level.
func fadeTo(duck *components.DuckData, target, durationMs float64) {
	duck.Target = target
	duck.Fades++
	if durationMs <= 0 {
		duck.Level = target
		duck.Tween = nil
		return
	}
	duck.Tween = gween.New(float32(duck.Level), float32(target), float32(durationMs), ease.Linear)
}

// UpdateDuck advances the running fade by dtMs and applies the level to the
// controlled track.
func UpdateDuck(w donburi.World, dtMs float64) {
	entry, ok := components.Duck.First(w)
	if !ok {
		return
	}
	duck := components.Duck.Get(entry)
	if duck.Tween == nil {
		return
	}

	level, finished := duck.Tween.Update(float32(dtMs))
	duck.Level = float64(level)
	if finished {
		duck.Level = duck.Target
		duck.Tween = nil
	}
	applyDuck(entry)
}

// applyDuck sets the controlled track's volume from the fade level and the
// music volume.
func applyDuck(entry *donburi.Entry) {
	duck := components.Duck.Get(entry)
	if duck.Track == nil {
		return
	}
	volume := duck.Level
	if entry.HasComponent(components.Audio) {
		audio := components.Audio.Get(entry)
		volume *= musicVolume(audio)
	}
	duck.Track.SetVolume(volume)
}

func duckState(w donburi.World) (*components.DuckData, bool) {
	entry, ok := components.Duck.First(w)
	if !ok {
		return nil, false
	}
	return components.Duck.Get(entry), true
}
