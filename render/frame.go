package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ropesim/core"
	"github.com/lixenwraith/ropesim/vmath"
)

// Dot is an interpolated point ready to draw
type Dot struct {
	ID     core.ID
	Pos    mgl64.Vec2
	Locked bool
}

// Segment is an interpolated link ready to draw
type Segment struct {
	ID   core.ID
	A, B mgl64.Vec2
}

// Frame is everything drawn from one (current, next, interp) triple
type Frame struct {
	Dots     []Dot
	Segments []Segment
}

// DisplayPosition interpolates a point between its two snapshots
func DisplayPosition(cur, next *core.Point, interp float64) mgl64.Vec2 {
	return vmath.Lerp(cur.Pos, next.Pos, interp)
}

// BuildFrame pairs entities of the two snapshots by id
// Entities only in next are drawn at their next position, entities only in current are gone and skipped
func BuildFrame(current, next *core.State, interp float64) Frame {
	var f Frame
	f.Dots = make([]Dot, 0, next.PointCount())
	f.Segments = make([]Segment, 0, next.LinkCount())

	for i := range next.Points() {
		np := &next.Points()[i]
		f.Dots = append(f.Dots, Dot{
			ID:     np.ID,
			Pos:    displayOf(current, np, interp),
			// Lock state is taken from next so a toggle shows on the frame it was made
			Locked: np.Locked,
		})
	}

	for _, l := range next.Links() {
		a, b := next.Point(l.A), next.Point(l.B)
		if a == nil || b == nil {
			continue
		}
		f.Segments = append(f.Segments, Segment{
			ID: l.ID,
			A:  displayOf(current, a, interp),
			B:  displayOf(current, b, interp),
		})
	}
	return f
}

func displayOf(current *core.State, np *core.Point, interp float64) mgl64.Vec2 {
	if cp := current.Point(np.ID); cp != nil {
		return DisplayPosition(cp, np, interp)
	}
	return np.Pos
}
