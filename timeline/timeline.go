// Package timeline provides the virtual clock that drives a run and a queue of
// deferred callbacks bound to it. Nothing here reads wall-clock time, so a run
// can be paused, replayed or stepped frame by frame in tests.
package timeline

import "container/heap"

// Clock is a pausable millisecond clock advanced by the game tick.
type Clock struct {
	now    float64
	paused bool
}

func NewClock(startMs float64) *Clock {
	return &Clock{now: startMs}
}

// Now returns the current time in milliseconds.
func (c *Clock) Now() float64 { return c.now }

// Advance moves the clock forward by dtMs and returns the new time.
// Negative steps and steps while paused are ignored.
func (c *Clock) Advance(dtMs float64) float64 {
	if c.paused || dtMs <= 0 {
		return c.now
	}
	c.now += dtMs
	return c.now
}

func (c *Clock) Pause()       { c.paused = true }
func (c *Clock) Resume()      { c.paused = false }
func (c *Clock) Paused() bool { return c.paused }

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type timer struct {
	at     float64
	seq    uint64
	handle Handle
	fn     func()
	index  int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Timers is a queue of callbacks fired against a Clock. A Timers value is
// scoped to one run: after Stop it drops everything pending and refuses new
// callbacks, so nothing from a finished run can fire into the next one.
type Timers struct {
	clock   *Clock
	heap    timerHeap
	live    map[Handle]*timer
	seq     uint64
	stopped bool
}

func NewTimers(clock *Clock) *Timers {
	return &Timers{
		clock: clock,
		live:  make(map[Handle]*timer),
	}
}

// Clock returns the clock the timers are bound to.
func (t *Timers) Clock() *Clock { return t.clock }

// At schedules fn at absolute time ms. Returns 0 if the queue is stopped.
func (t *Timers) At(ms float64, fn func()) Handle {
	if t.stopped || fn == nil {
		return 0
	}
	t.seq++
	tm := &timer{at: ms, seq: t.seq, handle: Handle(t.seq), fn: fn}
	heap.Push(&t.heap, tm)
	t.live[tm.handle] = tm
	return tm.handle
}

// After schedules fn delayMs after the clock's current time. Negative delays
// fire on the next Fire call.
func (t *Timers) After(delayMs float64, fn func()) Handle {
	if delayMs < 0 {
		delayMs = 0
	}
	return t.At(t.clock.Now()+delayMs, fn)
}

// Cancel removes a pending callback. It reports whether one was removed.
func (t *Timers) Cancel(h Handle) bool {
	tm, ok := t.live[h]
	if !ok {
		return false
	}
	heap.Remove(&t.heap, tm.index)
	delete(t.live, h)
	return true
}

// Stop drops every pending callback and refuses new ones.
func (t *Timers) Stop() {
	t.stopped = true
	t.heap = nil
	clear(t.live)
}

func (t *Timers) Stopped() bool { return t.stopped }

// Len returns the number of pending callbacks.
func (t *Timers) Len() int { return len(t.heap) }

// Fire runs every callback due at or before the clock's current time, in
// (time, scheduling order). Callbacks scheduled by a callback for a time
// already due run in the same pass. Returns the number of callbacks run.
func (t *Timers) Fire() int {
	now := t.clock.Now()
	fired := 0
	for !t.stopped && len(t.heap) > 0 && t.heap[0].at <= now {
		tm := heap.Pop(&t.heap).(*timer)
		delete(t.live, tm.handle)
		tm.fn()
		fired++
	}
	return fired
}

// Tick advances the clock by dtMs and fires whatever became due.
func (t *Timers) Tick(dtMs float64) int {
	t.clock.Advance(dtMs)
	return t.Fire()
}
