package network

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestKeepsNewestWhenStaleArrivesLast(t *testing.T) {
	var l Latest[string]
	old := l.Begin()
	current := l.Begin()

	l.Deliver(current, "alto", nil)
	l.Deliver(old, "soprano", nil)

	res, ok := l.Take()
	require.True(t, ok)
	assert.Equal(t, "alto", res.Value)

	_, ok = l.Take()
	assert.False(t, ok, "a result is taken once")
}

func TestLatestDropsResultOfSupersededQuery(t *testing.T) {
	var l Latest[string]
	old := l.Begin()
	l.Begin()

	l.Deliver(old, "soprano", errors.New("timeout"))
	_, ok := l.Take()
	assert.False(t, ok)
}

func TestLatestBeginDiscardsUntakenResult(t *testing.T) {
	var l Latest[int]
	seq := l.Begin()
	l.Deliver(seq, 3, nil)
	l.Begin()

	_, ok := l.Take()
	assert.False(t, ok)
}
