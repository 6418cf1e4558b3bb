package core

import (
	"errors"
	"testing"

	"github.com/lixenwraith/ropesim/vmath"
)

// buildTriangle returns points 1,2,3 and links 10 (1-2), 11 (2-3), 12 (3-1)
func buildTriangle() *State {
	s := NewState()
	s.AddPoint(NewPoint(1, vmath.Vec(0, 0)))
	s.AddPoint(NewPoint(2, vmath.Vec(10, 0)))
	s.AddPoint(NewPoint(3, vmath.Vec(5, 8)))
	s.AddLink(Link{ID: 10, A: 1, B: 2, RestLength: 10})
	s.AddLink(Link{ID: 11, A: 2, B: 3, RestLength: vmath.Distance(vmath.Vec(10, 0), vmath.Vec(5, 8))})
	s.AddLink(Link{ID: 12, A: 3, B: 1, RestLength: vmath.Distance(vmath.Vec(5, 8), vmath.Vec(0, 0))})
	return s
}

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator(100)
	if got := a.Peek(); got != 100 {
		t.Fatalf("Peek = %d, want 100", got)
	}

	seen := make(map[ID]bool)
	prev := ID(0)
	for i := 0; i < 50; i++ {
		id := a.Next()
		if seen[id] {
			t.Fatalf("id %d issued twice", id)
		}
		if i > 0 && id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		seen[id] = true
		prev = id
	}

	a.Reset()
	if got := a.Next(); got != 100 {
		t.Errorf("after Reset Next = %d, want 100", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := buildTriangle()
	cp := orig.Clone()

	// Mutate every point of the copy
	for i := range cp.Points() {
		p := &cp.Points()[i]
		p.Pos = p.Pos.Add(vmath.Vec(100, 100))
		p.PrevPos = p.PrevPos.Add(vmath.Vec(100, 100))
		p.Locked = true
	}

	for _, p := range orig.Points() {
		if p.Pos[0] >= 100 || p.Locked {
			t.Errorf("original point %d changed after mutating copy: %+v", p.ID, p)
		}
	}

	// Every link of the copy resolves to a point owned by the copy
	for _, l := range cp.Links() {
		pa, pb := cp.Point(l.A), cp.Point(l.B)
		if pa == nil || pb == nil {
			t.Fatalf("copy link %d does not resolve", l.ID)
		}
		if pa == orig.Point(l.A) || pb == orig.Point(l.B) {
			t.Errorf("copy link %d aliases original points", l.ID)
		}
		if pa.Pos[0] < 100 {
			t.Errorf("copy link %d resolved to unmodified point %+v", l.ID, pa)
		}
	}

	// Structural edits on the copy do not leak either
	cp.RemovePoint(1)
	if orig.PointCount() != 3 || orig.LinkCount() != 3 {
		t.Errorf("original lost entities: %d points %d links", orig.PointCount(), orig.LinkCount())
	}
}

func TestCopyFromReusesAndResets(t *testing.T) {
	dst := buildTriangle()
	dst.AddPoint(NewPoint(99, vmath.Vec(1, 1)))

	src := NewState()
	src.AddPoint(NewPoint(5, vmath.Vec(2, 2)))

	dst.CopyFrom(src)
	if dst.PointCount() != 1 || dst.LinkCount() != 0 {
		t.Fatalf("CopyFrom left stale data: %d points %d links", dst.PointCount(), dst.LinkCount())
	}
	if dst.HasPoint(99) || dst.HasPoint(1) {
		t.Error("stale index entries survived CopyFrom")
	}
	if p := dst.Point(5); p == nil || !p.Pos.ApproxEqual(vmath.Vec(2, 2)) {
		t.Errorf("Point(5) = %+v", p)
	}

	var zero State
	zero.CopyFrom(buildTriangle())
	if zero.PointCount() != 3 || zero.Point(2) == nil {
		t.Error("CopyFrom into zero State failed")
	}
}

func TestRemovePointRemovesIncidentLinks(t *testing.T) {
	s := buildTriangle()

	removed, ok := s.RemovePoint(2)
	if !ok {
		t.Fatal("RemovePoint(2) reported missing point")
	}
	if len(removed) != 2 {
		t.Fatalf("removed %d links, want 2", len(removed))
	}
	for _, l := range s.Links() {
		if l.Touches(2) {
			t.Errorf("link %d still references removed point", l.ID)
		}
	}
	if s.LinkCount() != 1 || s.Links()[0].ID != 12 {
		t.Errorf("unexpected remaining links %+v", s.Links())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("state not well-formed after removal: %v", err)
	}
	if _, ok := s.RemovePoint(2); ok {
		t.Error("second RemovePoint(2) should report missing point")
	}
}

func TestAddPointKeepsIDOrder(t *testing.T) {
	s := NewState()
	for _, id := range []ID{5, 1, 9, 3, 7} {
		s.AddPoint(NewPoint(id, vmath.Vec(float64(id), 0)))
	}

	var prev ID
	for i, p := range s.Points() {
		if i > 0 && p.ID <= prev {
			t.Fatalf("points out of order: %v", s.Points())
		}
		prev = p.ID
		if got := s.Point(p.ID); got == nil || got.Pos[0] != float64(p.ID) {
			t.Errorf("index for %d resolves to %+v", p.ID, got)
		}
	}

	// Replace keeps count
	s.AddPoint(NewPoint(3, vmath.Vec(-1, -1)))
	if s.PointCount() != 5 || s.Point(3).Pos[0] != -1 {
		t.Error("AddPoint with existing id should replace")
	}
}

func TestLinkQueries(t *testing.T) {
	s := buildTriangle()

	if !s.HasLink(2, 1) || !s.HasLink(1, 2) {
		t.Error("HasLink should be order-insensitive")
	}
	if got := s.LinksOf(3); len(got) != 2 {
		t.Errorf("LinksOf(3) = %v, want 2 links", got)
	}
	if l, ok := s.Link(11); !ok || l.A != 2 {
		t.Errorf("Link(11) = %+v, %v", l, ok)
	}
	if other, ok := (Link{A: 4, B: 8}).Other(8); !ok || other != 4 {
		t.Errorf("Other(8) = %d, %v", other, ok)
	}
	if _, ok := (Link{A: 4, B: 8}).Other(5); ok {
		t.Error("Other on non-endpoint should fail")
	}

	if !s.RemoveLink(11) || s.RemoveLink(11) {
		t.Error("RemoveLink should succeed once")
	}
	if s.Links()[0].ID != 10 || s.Links()[1].ID != 12 {
		t.Errorf("RemoveLink broke relaxation order: %+v", s.Links())
	}
}

func TestPointAtPicksLowestID(t *testing.T) {
	s := NewState()
	s.AddPoint(NewPoint(4, vmath.Vec(1, 0)))
	s.AddPoint(NewPoint(2, vmath.Vec(0, 1)))

	id, ok := s.PointAt(vmath.Vec(0, 0), 2)
	if !ok || id != 2 {
		t.Errorf("PointAt = %d, %v, want 2", id, ok)
	}
	if _, ok := s.PointAt(vmath.Vec(50, 50), 2); ok {
		t.Error("PointAt found a point far away")
	}
}

func TestValidateReportsDanglingLink(t *testing.T) {
	s := buildTriangle()
	s.AddLink(Link{ID: 20, A: 1, B: 42})

	err := s.Validate()
	if !errors.Is(err, ErrDanglingLink) {
		t.Errorf("Validate = %v, want ErrDanglingLink", err)
	}
}

func TestPointVelocityAndPlace(t *testing.T) {
	p := NewPoint(1, vmath.Vec(3, 3))
	if v := p.Velocity(); !v.ApproxEqual(vmath.Vec(0, 0)) {
		t.Errorf("new point velocity = %v", v)
	}
	p.Pos = vmath.Vec(4, 5)
	if v := p.Velocity(); !v.ApproxEqual(vmath.Vec(1, 2)) {
		t.Errorf("velocity = %v, want (1,2)", v)
	}
	p.Place(vmath.Vec(9, 9))
	if v := p.Velocity(); !v.ApproxEqual(vmath.Vec(0, 0)) {
		t.Errorf("Place left velocity %v", v)
	}
}
