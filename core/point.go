package core

import "github.com/go-gl/mathgl/mgl64"

// Point is a verlet particle; velocity is implied by Pos - PrevPos
type Point struct {
	ID      ID
	Pos     mgl64.Vec2
	PrevPos mgl64.Vec2
	Locked  bool
}

// NewPoint creates an unlocked point at rest
func NewPoint(id ID, pos mgl64.Vec2) Point {
	return Point{ID: id, Pos: pos, PrevPos: pos}
}

// Velocity returns displacement over the last tick
func (p *Point) Velocity() mgl64.Vec2 {
	return p.Pos.Sub(p.PrevPos)
}

// Place teleports the point without giving it velocity
func (p *Point) Place(pos mgl64.Vec2) {
	p.Pos = pos
	p.PrevPos = pos
}
