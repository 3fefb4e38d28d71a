package systems

import (
	"testing"

	"github.com/automoto/songrunner/components"
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerJumpsOnlyFromGround(t *testing.T) {
	w, _ := newTestLevel(t)
	entry, ok := tags.Player.First(w)
	require.True(t, ok)
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)

	UpdatePlayer(w)
	require.NotNil(t, physics.OnGround, "runner starts on the ground")
	groundY := obj.Y

	RequestJump(w)
	UpdatePlayer(w)
	assert.Less(t, obj.Y, groundY)
	assert.Nil(t, physics.OnGround)
	assert.Equal(t, 1, components.Player.Get(entry).Jumps)

	// Mid-air requests are dropped.
	RequestJump(w)
	UpdatePlayer(w)
	assert.Equal(t, 1, components.Player.Get(entry).Jumps)
	assert.False(t, components.Player.Get(entry).JumpRequested)

	for range 200 {
		UpdatePlayer(w)
	}
	assert.NotNil(t, physics.OnGround)
	assert.InDelta(t, groundY, obj.Y, 1)
}

func TestUpdateScrollWraps(t *testing.T) {
	w, _ := newTestLevel(t)
	entry, ok := components.Level.First(w)
	require.True(t, ok)
	level := components.Level.Get(entry)
	level.Song.Level.SkyScroll = 1000
	level.Song.Level.GroundScroll = 2

	UpdateScroll(w)
	UpdateScroll(w)
	assert.Equal(t, 720.0, level.SkyOffset)
	assert.Equal(t, 4.0, level.GroundOffset)
}

func TestRunnerSwitchesToJumpPoseInTheAir(t *testing.T) {
	w, _ := newTestLevel(t)
	entry, ok := tags.Player.First(w)
	require.True(t, ok)
	anim := components.Animation.Get(entry)

	UpdatePlayer(w)
	UpdateAnimations(w)
	assert.Equal(t, cfg.AnimRun, anim.Current)

	RequestJump(w)
	UpdatePlayer(w)
	UpdateAnimations(w)
	assert.Equal(t, cfg.AnimJump, anim.Current)
	require.NotNil(t, anim.CurrentAnimation)
	assert.Equal(t, cfg.Animations[cfg.AnimJump].First, anim.CurrentAnimation.Frame())
}
