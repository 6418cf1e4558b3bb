package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ropesim/core"
	"github.com/lixenwraith/ropesim/parameter"
	"github.com/lixenwraith/ropesim/vmath"
)

// Advancer steps a state by dt seconds; physics.Integrator is the production implementation
type Advancer interface {
	Advance(s *core.State, dt float64)
}

// SchedulerConfig holds tick timing knobs
type SchedulerConfig struct {
	TicksPerSecond     int
	MaxCatchUpTicks    int
	MaxBacklogTicks    int // 0 keeps the whole backlog
	ClampInterpolation bool
}

// DefaultSchedulerConfig returns compile-time defaults
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		TicksPerSecond:     parameter.TicksPerSecond,
		MaxCatchUpTicks:    parameter.MaxCatchUpTicks,
		MaxBacklogTicks:    parameter.MaxBacklogTicks,
		ClampInterpolation: parameter.ClampInterpolation,
	}
}

// TickScheduler runs the integrator on a fixed tick, driven by an external poll per frame
// Keeps two snapshots: current (start of interpolation window) and next (live, editable)
// Single-goroutine by contract; no locking
type TickScheduler struct {
	cfg      SchedulerConfig
	timeskip time.Duration
	dt       float64

	clock    TimeProvider
	lastPoll time.Time

	// accumulated is wall time owed to the simulation; <= 0 once caught up
	accumulated time.Duration
	paused      bool

	current *core.State
	next    *core.State

	advancer Advancer
	log      *zap.Logger

	ticks   uint64
	dropped uint64
}

// NewTickScheduler creates a scheduler owning a fresh pair of empty states
func NewTickScheduler(cfg SchedulerConfig, advancer Advancer, clock TimeProvider, log *zap.Logger) *TickScheduler {
	if cfg.TicksPerSecond <= 0 {
		cfg.TicksPerSecond = parameter.TicksPerSecond
	}
	if cfg.MaxCatchUpTicks <= 0 {
		cfg.MaxCatchUpTicks = parameter.MaxCatchUpTicks
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &TickScheduler{
		cfg:      cfg,
		// timeskip truncates to whole ns (16666666 at 60 Hz); dt stays exact, the sub-ns drift is ignored
		timeskip: time.Second / time.Duration(cfg.TicksPerSecond),
		dt:       1.0 / float64(cfg.TicksPerSecond),
		clock:    clock,
		lastPoll: clock.Now(),
		current:  core.NewState(),
		next:     core.NewState(),
		advancer: advancer,
		log:      log,
	}
}

// Poll credits elapsed wall time since the previous poll and runs the owed ticks
// Returns the number of ticks run
func (ts *TickScheduler) Poll() int {
	now := ts.clock.Now()
	elapsed := now.Sub(ts.lastPoll)
	ts.lastPoll = now
	if elapsed > 0 {
		ts.accumulated += elapsed
	}
	return ts.RunTicks()
}

// Accumulate credits d of wall time without running ticks
func (ts *TickScheduler) Accumulate(d time.Duration) {
	ts.accumulated += d
}

// RunTicks runs up to MaxCatchUpTicks ticks while time is owed
// Each tick snapshots next into current, then advances next unless paused
func (ts *TickScheduler) RunTicks() int {
	n := 0
	for ts.accumulated > 0 && n < ts.cfg.MaxCatchUpTicks {
		ts.current.CopyFrom(ts.next)
		if !ts.paused && ts.advancer != nil {
			ts.advancer.Advance(ts.next, ts.dt)
		}
		ts.accumulated -= ts.timeskip
		ts.ticks++
		n++
	}

	if n == ts.cfg.MaxCatchUpTicks && ts.accumulated > 0 {
		ts.trimBacklog()
	}
	return n
}

// trimBacklog drops owed time beyond MaxBacklogTicks after a capped poll
func (ts *TickScheduler) trimBacklog() {
	if ts.cfg.MaxBacklogTicks <= 0 {
		ts.log.Debug("catch-up capped",
			zap.Int("ticks", ts.cfg.MaxCatchUpTicks),
			zap.Duration("backlog", ts.accumulated))
		return
	}

	limit := time.Duration(ts.cfg.MaxBacklogTicks) * ts.timeskip
	if ts.accumulated <= limit {
		return
	}
	excess := ts.accumulated - limit
	skipped := uint64(excess / ts.timeskip)
	if excess%ts.timeskip != 0 {
		skipped++
	}
	ts.dropped += skipped
	ts.accumulated = limit
	ts.log.Debug("dropped simulation backlog",
		zap.Uint64("ticks", skipped),
		zap.Duration("excess", excess))
}

// Interpolation returns the render factor between current (0) and next (1)
// Unclamped unless ClampInterpolation is set; may exceed 1 while catching up
func (ts *TickScheduler) Interpolation() float64 {
	f := 1 + float64(ts.accumulated)/float64(ts.timeskip)
	if ts.cfg.ClampInterpolation {
		return vmath.Clamp01(f)
	}
	return f
}

// Reset empties both snapshots and forgets owed time
func (ts *TickScheduler) Reset() {
	ts.current.Clear()
	ts.next.Clear()
	ts.accumulated = 0
	ts.lastPoll = ts.clock.Now()
}

// Current returns the snapshot at the start of the interpolation window, valid for this frame only
func (ts *TickScheduler) Current() *core.State { return ts.current }

// Next returns the live state, target of editing and of the next advance
func (ts *TickScheduler) Next() *core.State { return ts.next }

// Paused reports whether advancing is suspended
func (ts *TickScheduler) Paused() bool { return ts.paused }

// SetPaused suspends or resumes advancing; snapshots continue either way
func (ts *TickScheduler) SetPaused(p bool) { ts.paused = p }

// TogglePaused flips the pause flag and returns the new value
func (ts *TickScheduler) TogglePaused() bool {
	ts.paused = !ts.paused
	return ts.paused
}

// Timeskip returns the fixed tick duration
func (ts *TickScheduler) Timeskip() time.Duration { return ts.timeskip }

// Accumulated returns wall time currently owed
func (ts *TickScheduler) Accumulated() time.Duration { return ts.accumulated }

// Ticks returns total ticks run, paused ticks included
func (ts *TickScheduler) Ticks() uint64 { return ts.ticks }

// Dropped returns ticks discarded by the backlog bound
func (ts *TickScheduler) Dropped() uint64 { return ts.dropped }
