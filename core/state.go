package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/ropesim/vmath"
)

// ErrDanglingLink is reported by Validate when a link endpoint does not resolve
var ErrDanglingLink = errors.New("link references missing point")

// State is one tick's world: points kept sorted by id, links in relaxation order
// Pointers returned by Point are valid until the next AddPoint/RemovePoint/CopyFrom
type State struct {
	points []Point
	index  map[ID]int
	links  []Link
}

// NewState creates an empty state
func NewState() *State {
	return &State{index: make(map[ID]int)}
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	c := NewState()
	c.CopyFrom(s)
	return c
}

// CopyFrom overwrites s with a deep copy of src, reusing s's storage
func (s *State) CopyFrom(src *State) {
	if s == src {
		return
	}
	s.points = append(s.points[:0], src.points...)
	s.links = append(s.links[:0], src.links...)
	if s.index == nil {
		s.index = make(map[ID]int, len(s.points))
	}
	clear(s.index)
	for i := range s.points {
		s.index[s.points[i].ID] = i
	}
}

// Clear removes every point and link
func (s *State) Clear() {
	s.points = s.points[:0]
	s.links = s.links[:0]
	clear(s.index)
}

// PointCount returns number of points
func (s *State) PointCount() int { return len(s.points) }

// LinkCount returns number of links
func (s *State) LinkCount() int { return len(s.links) }

// Point resolves id; nil if absent
func (s *State) Point(id ID) *Point {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	return &s.points[i]
}

// HasPoint reports whether id is a point of s
func (s *State) HasPoint(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// Points returns the backing slice in ascending id order, callers must not append
func (s *State) Points() []Point { return s.points }

// Links returns the backing slice in relaxation order, callers must not append
func (s *State) Links() []Link { return s.links }

// Link resolves a link by id
func (s *State) Link(id ID) (Link, bool) {
	for _, l := range s.links {
		if l.ID == id {
			return l, true
		}
	}
	return Link{}, false
}

// LinksOf returns ids of links touching point id
func (s *State) LinksOf(id ID) []ID {
	var out []ID
	for _, l := range s.links {
		if l.Touches(id) {
			out = append(out, l.ID)
		}
	}
	return out
}

// HasLink reports whether a and b are already joined, in either order
func (s *State) HasLink(a, b ID) bool {
	for _, l := range s.links {
		if l.Joins(a, b) {
			return true
		}
	}
	return false
}

// PointAt returns the lowest-id point within radius of pos
func (s *State) PointAt(pos mgl64.Vec2, radius float64) (ID, bool) {
	for i := range s.points {
		if vmath.WithinRadius(pos, s.points[i].Pos, radius) {
			return s.points[i].ID, true
		}
	}
	return 0, false
}

// AddPoint inserts p keeping id order; an existing point with the same id is replaced
func (s *State) AddPoint(p Point) {
	if s.index == nil {
		s.index = make(map[ID]int)
	}
	if i, ok := s.index[p.ID]; ok {
		s.points[i] = p
		return
	}
	n := len(s.points)
	if n == 0 || s.points[n-1].ID < p.ID {
		s.points = append(s.points, p)
		s.index[p.ID] = n
		return
	}
	at := sort.Search(n, func(i int) bool { return s.points[i].ID > p.ID })
	s.points = append(s.points, Point{})
	copy(s.points[at+1:], s.points[at:])
	s.points[at] = p
	s.reindex(at)
}

// RemovePoint deletes the point and every link touching it
// Returns ids of the removed links; ok is false if the point did not exist
func (s *State) RemovePoint(id ID) (removed []ID, ok bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}

	kept := s.links[:0]
	for _, l := range s.links {
		if l.Touches(id) {
			removed = append(removed, l.ID)
			continue
		}
		kept = append(kept, l)
	}
	s.links = kept

	s.points = append(s.points[:i], s.points[i+1:]...)
	delete(s.index, id)
	s.reindex(i)
	return removed, true
}

// AddLink appends l at the end of the relaxation order
func (s *State) AddLink(l Link) {
	s.links = append(s.links, l)
}

// RemoveLink deletes link id, preserving the order of the rest
func (s *State) RemoveLink(id ID) bool {
	for i, l := range s.links {
		if l.ID == id {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return true
		}
	}
	return false
}

// Validate returns an error naming the first link whose endpoints do not resolve
func (s *State) Validate() error {
	for _, l := range s.links {
		if !s.HasPoint(l.A) || !s.HasPoint(l.B) {
			return fmt.Errorf("link %d (%d-%d): %w", l.ID, l.A, l.B, ErrDanglingLink)
		}
	}
	return nil
}

func (s *State) reindex(from int) {
	for i := from; i < len(s.points); i++ {
		s.index[s.points[i].ID] = i
	}
}
