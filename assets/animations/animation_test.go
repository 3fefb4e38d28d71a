package animations

import (
	"testing"

	"github.com/automoto/songrunner/config"
	"github.com/stretchr/testify/assert"
)

func TestAnimationStepsAndLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)

	// Speed 1: the frame advances every second tick.
	a.Update()
	assert.Equal(t, 0, a.Frame())
	a.Update()
	assert.Equal(t, 1, a.Frame())
	assert.Equal(t, 0.5, a.Progress())

	a.Update()
	a.Update()
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Looped)

	a.Update()
	a.Update()
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestFromDefGuardsStep(t *testing.T) {
	a := FromDef(config.AnimationDef{First: 3, Last: 3, Step: 0, Speed: 0})
	assert.Equal(t, 1, a.Step)
	assert.Equal(t, 0.0, a.Progress(), "single frame range")

	a.Update()
	assert.Equal(t, 3, a.Frame())
}
