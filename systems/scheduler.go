package systems

import (
	cfg "github.com/automoto/songrunner/config"
	"github.com/automoto/songrunner/shared/songmap"
	"github.com/automoto/songrunner/systems/factory"
	"github.com/yohamta/donburi"
)

// ScheduleParams are the clock-independent inputs of note scheduling.
type ScheduleParams struct {
	SpawnX       float64 // x where notes enter
	HitX         float64 // x of the hit line (the player)
	Speed        float64 // px per second, leftward
	MusicStartMs float64
	EpilogueMs   float64
}

// TravelMs is how long a note takes from SpawnX to HitX.
func (p ScheduleParams) TravelMs() float64 {
	return (p.SpawnX - p.HitX) / p.Speed * 1000
}

// XAt returns where a note whose ideal spawn time is spawnMs is at nowMs.
// Before spawnMs the note sits at SpawnX.
func (p ScheduleParams) XAt(spawnMs, nowMs float64) float64 {
	late := max(0, nowMs-spawnMs)
	return p.SpawnX - late*p.Speed/1000
}

// SpawnPlan is the scheduling decision for one note.
type SpawnPlan struct {
	Note    songmap.Note
	HitMs   float64 // when the note reaches the hit line
	SpawnMs float64 // ideal spawn time; authoritative for judgment events
	DelayMs float64 // negative when the scheduler runs late
	X       float64 // x if spawned at the planning time
}

// Late reports whether the ideal spawn time had already passed.
func (s SpawnPlan) Late() bool { return s.DelayMs < 0 }

// PlanSpawns computes spawn plans for every note in time order (authored order
// on ties) and the run's end time, which is never earlier than nowMs.
func PlanSpawns(m *songmap.SongMap, p ScheduleParams, nowMs float64) ([]SpawnPlan, float64) {
	notes := m.Sorted()
	travel := p.TravelMs()

	plans := make([]SpawnPlan, 0, len(notes))
	lastHit := p.MusicStartMs
	for _, n := range notes {
		hit := p.MusicStartMs + n.Time
		spawn := hit - travel
		plans = append(plans, SpawnPlan{
			Note:    n,
			HitMs:   hit,
			SpawnMs: spawn,
			DelayMs: spawn - nowMs,
			X:       p.XAt(spawn, nowMs),
		})
		lastHit = max(lastHit, hit)
	}
	return plans, max(lastHit+p.EpilogueMs, nowMs)
}

// ScheduleNotes plans every note of m against the run clock. Late notes spawn
// immediately, shifted left so they still reach the hit line on time; the rest
// are deferred to their ideal spawn time. onEnd is scheduled at the run's end
// time, which is returned.
func ScheduleNotes(w donburi.World, m *songmap.SongMap, p ScheduleParams, pickFrame func() int, onEnd func()) float64 {
	clock, ok := runClock(w)
	if !ok {
		return 0
	}
	plans, endMs := PlanSpawns(m, p, clock.Now())
	for _, plan := range plans {
		if plan.Late() {
			spawnNote(w, plan, p, pickFrame)
			continue
		}
		clock.Timers.At(plan.SpawnMs, func() { spawnNote(w, plan, p, pickFrame) })
	}
	clock.Timers.At(endMs, onEnd)
	return endMs
}

func spawnNote(w donburi.World, plan SpawnPlan, p ScheduleParams, pickFrame func() int) *donburi.Entry {
	now, _ := RunNow(w)
	frame := 0
	if plan.Note.Frame != nil || pickFrame == nil {
		frame = plan.Note.FrameOr(0)
	} else {
		frame = pickFrame()
	}

	e := factory.CreateNote(w, factory.NoteSpec{
		Lane:        plan.Note.Lane,
		Frame:       frame,
		X:           p.XAt(plan.SpawnMs, now),
		Y:           laneY(plan.Note.Lane),
		SpawnX:      p.SpawnX,
		ScheduledMs: plan.SpawnMs,
		HitMs:       plan.HitMs,
		Speed:       p.Speed,
	})
	if run, ok := runState(w); ok {
		run.Spawned++
	}
	return e
}

func laneY(lane int) float64 {
	i := min(max(lane-1, 0), len(cfg.Notes.LaneY)-1)
	return cfg.Notes.LaneY[i]
}
