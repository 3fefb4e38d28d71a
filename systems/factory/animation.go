package factory

import (
	"github.com/automoto/songrunner/assets/animations"
	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
)

func newAnimationData(keys ...string) components.AnimationData {
	data := components.AnimationData{
		Animations: make(map[string]*animations.Animation, len(keys)),
	}
	for _, key := range keys {
		if def, ok := cfg.Animations[key]; ok {
			data.Animations[key] = animations.FromDef(def)
		}
	}
	return data
}
