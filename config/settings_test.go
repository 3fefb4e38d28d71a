package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextVolumeStepWraps(t *testing.T) {
	assert.Equal(t, 0.25, NextVolumeStep(0))
	assert.Equal(t, 0.75, NextVolumeStep(0.6))
	assert.Equal(t, 0.0, NextVolumeStep(1))
	assert.Equal(t, 0.0, NextVolumeStep(1.5))
}
