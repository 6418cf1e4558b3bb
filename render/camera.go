package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ropesim/parameter"
)

// Camera maps world space onto the terminal grid
// World origin sits at the screen centre; +y is down in both spaces
type Camera struct {
	Width, Height int
	// Scale is rows per world unit
	Scale float64
	// Aspect is cell width / cell height
	Aspect float64
}

// NewCamera fits 1/renderScale world units into the screen height
func NewCamera(width, height int, renderScale float64) Camera {
	c := Camera{Aspect: parameter.CellAspect}
	c.Resize(width, height, renderScale)
	return c
}

// Resize refits the camera after a terminal resize
func (c *Camera) Resize(width, height int, renderScale float64) {
	c.Width, c.Height = width, height
	c.Scale = float64(height) * renderScale
	if c.Scale <= 0 {
		c.Scale = renderScale
	}
}

// WorldToCell projects a world position to the nearest cell
func (c Camera) WorldToCell(p mgl64.Vec2) (x, y int) {
	fx := float64(c.Width)/2 + p.X()*c.Scale/c.Aspect
	fy := float64(c.Height)/2 + p.Y()*c.Scale
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// CellToWorld returns the world position of a cell's centre
func (c Camera) CellToWorld(x, y int) mgl64.Vec2 {
	wx := (float64(x) + 0.5 - float64(c.Width)/2) * c.Aspect / c.Scale
	wy := (float64(y) + 0.5 - float64(c.Height)/2) / c.Scale
	return mgl64.Vec2{wx, wy}
}

// WorldPerRow returns the world height of one cell
func (c Camera) WorldPerRow() float64 {
	return 1 / c.Scale
}

// PickRadius widens radius so a point is always clickable within its own cell
func (c Camera) PickRadius(radius float64) float64 {
	return math.Max(radius, c.WorldPerRow())
}

// Visible reports whether the cell is on screen
func (c Camera) Visible(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}
