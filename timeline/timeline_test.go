package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockAdvanceAndPause(t *testing.T) {
	c := NewClock(100)
	assert.Equal(t, 116.0, c.Advance(16))

	c.Pause()
	assert.Equal(t, 116.0, c.Advance(16))
	assert.True(t, c.Paused())

	c.Resume()
	assert.Equal(t, 116.0, c.Advance(-5))
	assert.Equal(t, 132.0, c.Advance(16))
}

func TestTimersFireInTimeThenInsertionOrder(t *testing.T) {
	clock := NewClock(0)
	timers := NewTimers(clock)

	var order []string
	timers.At(50, func() { order = append(order, "b1") })
	timers.At(10, func() { order = append(order, "a") })
	timers.At(50, func() { order = append(order, "b2") })
	timers.At(90, func() { order = append(order, "c") })

	assert.Equal(t, 0, timers.Tick(5))
	assert.Equal(t, 3, timers.Tick(45))
	assert.Equal(t, []string{"a", "b1", "b2"}, order)
	assert.Equal(t, 1, timers.Len())

	timers.Tick(40)
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, order)
}

func TestTimersAfterUsesClockNow(t *testing.T) {
	clock := NewClock(1000)
	timers := NewTimers(clock)

	fired := 0.0
	timers.After(250, func() { fired = clock.Now() })

	timers.Tick(200)
	assert.Zero(t, fired)
	timers.Tick(100)
	assert.Equal(t, 1300.0, fired)
}

func TestTimersNegativeDelayFiresNextPass(t *testing.T) {
	timers := NewTimers(NewClock(500))
	fired := false
	timers.After(-100, func() { fired = true })
	timers.Fire()
	assert.True(t, fired)
}

func TestTimersCancel(t *testing.T) {
	timers := NewTimers(NewClock(0))
	fired := false
	h := timers.After(10, func() { fired = true })

	require.True(t, timers.Cancel(h))
	assert.False(t, timers.Cancel(h))
	timers.Tick(20)
	assert.False(t, fired)
}

func TestTimersStopInvalidatesPendingAndFuture(t *testing.T) {
	timers := NewTimers(NewClock(0))
	fired := 0
	timers.After(10, func() { fired++ })
	timers.After(20, func() { fired++ })

	timers.Stop()
	assert.Equal(t, Handle(0), timers.After(5, func() { fired++ }))
	timers.Tick(100)

	assert.Zero(t, fired)
	assert.Zero(t, timers.Len())
	assert.True(t, timers.Stopped())
}

func TestTimersStopFromCallbackHaltsPass(t *testing.T) {
	timers := NewTimers(NewClock(0))
	fired := 0
	timers.At(10, func() {
		fired++
		timers.Stop()
	})
	timers.At(10, func() { fired++ })

	timers.Tick(10)
	assert.Equal(t, 1, fired)
}

func TestTimersCallbackSchedulingDueTimerRunsSamePass(t *testing.T) {
	timers := NewTimers(NewClock(0))
	var order []int
	timers.At(10, func() {
		order = append(order, 1)
		timers.After(0, func() { order = append(order, 2) })
	})
	timers.Tick(10)
	assert.Equal(t, []int{1, 2}, order)
}
