package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/ropesim/core"
	"github.com/lixenwraith/ropesim/parameter"
	"github.com/lixenwraith/ropesim/vmath"
)

// Integrator advances a State by one fixed slice: verlet step then stick relaxation
type Integrator struct {
	// Gravity is the acceleration applied to every unlocked point (+y is down)
	Gravity mgl64.Vec2
	// Iterations is the number of relaxation passes per Advance
	Iterations int
}

// NewIntegrator creates an integrator with downward gravity of the given magnitude
func NewIntegrator(gravity float64, iterations int) *Integrator {
	return &Integrator{
		Gravity:    mgl64.Vec2{0, gravity},
		Iterations: iterations,
	}
}

// DefaultIntegrator uses the compile-time tuning
func DefaultIntegrator() *Integrator {
	return NewIntegrator(parameter.Gravity, parameter.ConstraintIterations)
}

// Advance moves s forward by dt seconds in place
func (in *Integrator) Advance(s *core.State, dt float64) {
	Integrate(s, in.Gravity, dt)
	for i := 0; i < in.Iterations; i++ {
		Relax(s)
	}
}

// Integrate performs the verlet step: p' = p + (p - prev) + g*dt²; prev = p
func Integrate(s *core.State, gravity mgl64.Vec2, dt float64) {
	accel := gravity.Mul(dt * dt)
	points := s.Points()
	for i := range points {
		p := &points[i]
		if p.Locked {
			continue
		}
		before := p.Pos
		p.Pos = p.Pos.Add(p.Pos.Sub(p.PrevPos)).Add(accel)
		p.PrevPos = before
	}
}

// Relax runs one pass over the links in order, pulling each pair to its rest length
// Coincident endpoints have no direction and are left untouched for the pass
func Relax(s *core.State) {
	for _, l := range s.Links() {
		a, b := s.Point(l.A), s.Point(l.B)
		if a == nil || b == nil || (a.Locked && b.Locked) {
			continue
		}

		dir, ok := vmath.Normalize(a.Pos.Sub(b.Pos))
		if !ok {
			continue
		}
		centre := vmath.Midpoint(a.Pos, b.Pos)
		half := dir.Mul(l.RestLength / 2)

		if !a.Locked {
			a.Pos = centre.Add(half)
		}
		if !b.Locked {
			b.Pos = centre.Sub(half)
		}
	}
}

// Stretch returns the largest |length - rest| over all links of s
func Stretch(s *core.State) float64 {
	worst := 0.0
	for _, l := range s.Links() {
		a, b := s.Point(l.A), s.Point(l.B)
		if a == nil || b == nil {
			continue
		}
		d := vmath.Distance(a.Pos, b.Pos) - l.RestLength
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}
	return worst
}
