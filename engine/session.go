package engine

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/ropesim/core"
	"github.com/lixenwraith/ropesim/vmath"
)

// Editing errors
var (
	ErrUnknownPoint   = errors.New("unknown point")
	ErrUnknownLink    = errors.New("unknown link")
	ErrSelfLink       = errors.New("link endpoints must differ")
	ErrDuplicateLink  = errors.New("points already linked")
	ErrDegenerateLink = errors.New("link endpoints coincide")
)

// Session is the top-level simulation: id allocator, scheduler and the editing contract
// All edits target the scheduler's next state and take effect on the following tick
type Session struct {
	ids       *core.IDAllocator
	scheduler *TickScheduler
	log       *zap.Logger

	// validate runs State.Validate after structural edits
	validate bool
}

// SessionOption customises a Session
type SessionOption func(*Session)

// WithLogger sets the session logger
func WithLogger(log *zap.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithValidation enables referential checks after every structural edit
func WithValidation(on bool) SessionOption {
	return func(s *Session) { s.validate = on }
}

// WithIDStart seeds the id allocator
func WithIDStart(start core.ID) SessionOption {
	return func(s *Session) { s.ids = core.NewIDAllocator(start) }
}

// NewSession creates a paused session over the given scheduler
func NewSession(scheduler *TickScheduler, opts ...SessionOption) *Session {
	s := &Session{
		ids:       core.NewIDAllocator(0),
		scheduler: scheduler,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	scheduler.SetPaused(true)
	return s
}

// Scheduler exposes the underlying tick scheduler
func (s *Session) Scheduler() *TickScheduler { return s.scheduler }

// InsertPoint places a new unlocked point at rest at pos
func (s *Session) InsertPoint(pos mgl64.Vec2) core.ID {
	id := s.ids.Next()
	s.scheduler.Next().AddPoint(core.NewPoint(id, pos))
	s.log.Debug("point inserted", zap.Uint64("id", uint64(id)), zap.Float64("x", pos.X()), zap.Float64("y", pos.Y()))
	return id
}

// RemovePoint deletes a point together with every link touching it
func (s *Session) RemovePoint(id core.ID) error {
	removed, ok := s.scheduler.Next().RemovePoint(id)
	if !ok {
		return fmt.Errorf("remove point %d: %w", id, ErrUnknownPoint)
	}
	s.log.Debug("point removed", zap.Uint64("id", uint64(id)), zap.Int("links", len(removed)))
	s.check()
	return nil
}

// InsertLink joins a and b with a stick whose rest length is their current distance
func (s *Session) InsertLink(a, b core.ID) (core.ID, error) {
	next := s.scheduler.Next()
	if a == b {
		return 0, fmt.Errorf("link %d-%d: %w", a, b, ErrSelfLink)
	}
	pa, pb := next.Point(a), next.Point(b)
	if pa == nil {
		return 0, fmt.Errorf("link %d-%d: point %d: %w", a, b, a, ErrUnknownPoint)
	}
	if pb == nil {
		return 0, fmt.Errorf("link %d-%d: point %d: %w", a, b, b, ErrUnknownPoint)
	}
	if next.HasLink(a, b) {
		return 0, fmt.Errorf("link %d-%d: %w", a, b, ErrDuplicateLink)
	}
	rest := vmath.Distance(pa.Pos, pb.Pos)
	if rest < vmath.Epsilon {
		return 0, fmt.Errorf("link %d-%d: %w", a, b, ErrDegenerateLink)
	}

	id := s.ids.Next()
	next.AddLink(core.Link{ID: id, A: a, B: b, RestLength: rest})
	s.log.Debug("link inserted", zap.Uint64("id", uint64(id)), zap.Uint64("a", uint64(a)), zap.Uint64("b", uint64(b)), zap.Float64("rest", rest))
	s.check()
	return id, nil
}

// RemoveLink deletes a single link
func (s *Session) RemoveLink(id core.ID) error {
	if !s.scheduler.Next().RemoveLink(id) {
		return fmt.Errorf("remove link %d: %w", id, ErrUnknownLink)
	}
	s.log.Debug("link removed", zap.Uint64("id", uint64(id)))
	return nil
}

// ToggleLock flips a point's locked flag and returns the new value
func (s *Session) ToggleLock(id core.ID) (bool, error) {
	p := s.scheduler.Next().Point(id)
	if p == nil {
		return false, fmt.Errorf("toggle lock %d: %w", id, ErrUnknownPoint)
	}
	p.Locked = !p.Locked
	s.log.Debug("lock toggled", zap.Uint64("id", uint64(id)), zap.Bool("locked", p.Locked))
	return p.Locked, nil
}

// PointAt hit-tests the live state
func (s *Session) PointAt(pos mgl64.Vec2, radius float64) (core.ID, bool) {
	return s.scheduler.Next().PointAt(pos, radius)
}

// Point returns a copy of a live point
func (s *Session) Point(id core.ID) (core.Point, bool) {
	p := s.scheduler.Next().Point(id)
	if p == nil {
		return core.Point{}, false
	}
	return *p, true
}

// Paused reports whether the simulation is frozen
func (s *Session) Paused() bool { return s.scheduler.Paused() }

// TogglePause flips pause and returns the new value
func (s *Session) TogglePause() bool {
	p := s.scheduler.TogglePaused()
	s.log.Info("pause toggled", zap.Bool("paused", p))
	return p
}

// Poll runs the scheduler for this frame, returns ticks run
func (s *Session) Poll() int {
	return s.scheduler.Poll()
}

// Snapshot returns the render view for this frame; states must not be retained past it
func (s *Session) Snapshot() (current, next *core.State, interp float64) {
	return s.scheduler.Current(), s.scheduler.Next(), s.scheduler.Interpolation()
}

// Reset clears the scene, restarts ids and pauses
func (s *Session) Reset() {
	s.scheduler.Reset()
	s.scheduler.SetPaused(true)
	s.ids.Reset()
	s.log.Info("session reset")
}

func (s *Session) check() {
	if !s.validate {
		return
	}
	if err := s.scheduler.Next().Validate(); err != nil {
		s.log.Error("state invariant violated", zap.Error(err))
	}
}
