package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ropesim/parameter"
)

// Screen is the part of tcell.Screen the renderer draws through
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// Styles
var (
	StyleBackground = tcell.StyleDefault.Background(tcell.ColorBlack)
	StylePoint      = StyleBackground.Foreground(tcell.ColorWhite).Bold(true)
	StyleLocked     = StyleBackground.Foreground(tcell.ColorRed).Bold(true)
	StyleLink       = StyleBackground.Foreground(tcell.ColorWhite)
	StylePreview    = StyleBackground.Foreground(tcell.ColorGray)
	StyleHUD        = StyleBackground.Foreground(tcell.ColorYellow)
	StyleHUDPaused  = StyleBackground.Foreground(tcell.ColorAqua)
)

// HUD is the status line content
type HUD struct {
	Paused  bool
	Points  int
	Links   int
	Ticks   uint64
	Interp  float64
	Dropped uint64
}

// Preview is the in-progress link drag line
type Preview struct {
	From, To mgl64.Vec2
	Active   bool
}

// Draw renders one frame: links under points, preview, then the HUD
func Draw(scr Screen, cam Camera, f Frame, preview Preview, hud HUD) {
	scr.Clear()

	for _, s := range f.Segments {
		drawLine(scr, cam, s.A, s.B, parameter.LinkGlyph, StyleLink)
	}
	if preview.Active {
		drawLine(scr, cam, preview.From, preview.To, parameter.LinkGlyph, StylePreview)
	}
	for _, d := range f.Dots {
		style := StylePoint
		if d.Locked {
			style = StyleLocked
		}
		x, y := cam.WorldToCell(d.Pos)
		if cam.Visible(x, y) {
			scr.SetContent(x, y, parameter.PointGlyph, nil, style)
		}
	}

	drawHUD(scr, cam, hud)
	scr.Show()
}

func drawHUD(scr Screen, cam Camera, hud HUD) {
	state, style := "RUNNING", StyleHUD
	if hud.Paused {
		state, style = "PAUSED ", StyleHUDPaused
	}
	line := fmt.Sprintf(" %s  points %d  links %d  tick %d  interp %.2f", state, hud.Points, hud.Links, hud.Ticks, hud.Interp)
	if hud.Dropped > 0 {
		line += fmt.Sprintf("  dropped %d", hud.Dropped)
	}
	drawText(scr, cam, 0, 0, line, style)

	help := " click: point | drag: link | right: delete | middle/l: lock | space: run | c: clear | q: quit "
	drawText(scr, cam, 0, cam.Height-1, help, StylePreview)
}

func drawText(scr Screen, cam Camera, x, y int, text string, style tcell.Style) {
	if y < 0 || y >= cam.Height {
		return
	}
	for _, r := range text {
		if x >= cam.Width {
			return
		}
		if x >= 0 {
			scr.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// drawLine rasterises segment ab with Bresenham, clipped to the screen
func drawLine(scr Screen, cam Camera, a, b mgl64.Vec2, glyph rune, style tcell.Style) {
	x0, y0 := cam.WorldToCell(a)
	x1, y1 := cam.WorldToCell(b)

	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	// Long off-screen segments are bounded by their cell span
	for steps := 0; steps <= dx-dy; steps++ {
		if cam.Visible(x0, y0) {
			scr.SetContent(x0, y0, glyph, nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
