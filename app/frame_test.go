package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameGuardKeepsRunningAfterPanic(t *testing.T) {
	var g FrameGuard
	frames := 0
	frame := func() {
		frames++
		if frames == 1 {
			panic("nil note entry")
		}
	}

	require.NoError(t, g.Run(frame))
	require.NoError(t, g.Run(frame))
	assert.Equal(t, 2, frames, "the frame after a panic still runs")
}

func TestFrameGuardStopsAfterLimitInARow(t *testing.T) {
	g := FrameGuard{Limit: 3}
	boom := func() { panic("boom") }

	require.NoError(t, g.Run(boom))
	require.NoError(t, g.Run(boom))
	require.NoError(t, g.Run(func() {}), "a clean frame resets the count")
	require.NoError(t, g.Run(boom))
	require.NoError(t, g.Run(boom))

	err := g.Run(boom)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
