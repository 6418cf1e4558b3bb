package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/ropesim/core"
	"github.com/lixenwraith/ropesim/event"
	"github.com/lixenwraith/ropesim/render"
)

// Editing is the authoring contract the editor drives; engine.Session implements it
type Editing interface {
	InsertPoint(pos mgl64.Vec2) core.ID
	RemovePoint(id core.ID) error
	InsertLink(a, b core.ID) (core.ID, error)
	ToggleLock(id core.ID) (bool, error)
	PointAt(pos mgl64.Vec2, radius float64) (core.ID, bool)
	Point(id core.ID) (core.Point, bool)
	Paused() bool
	TogglePause() bool
	Reset()
}

// Editor applies pointer and key intents to the live state
// Placement, linking and locking only happen while paused; deletion works always
type Editor struct {
	edit       Editing
	cam        render.Camera
	pickRadius float64
	log        *zap.Logger

	cursor   mgl64.Vec2
	dragging bool
	origin   core.ID

	cues []event.Cue
	quit bool
}

// NewEditor creates an editor over edit; pickRadius is in world units
func NewEditor(edit Editing, cam render.Camera, pickRadius float64, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{edit: edit, cam: cam, pickRadius: pickRadius, log: log}
}

// SetCamera updates the projection after a resize
func (e *Editor) SetCamera(cam render.Camera) {
	e.cam = cam
}

// Camera returns the projection in use
func (e *Editor) Camera() render.Camera {
	return e.cam
}

// Apply consumes one intent
func (e *Editor) Apply(in Intent) {
	switch in.Type {
	case IntentQuit:
		e.quit = true
	case IntentTogglePause:
		paused := e.edit.TogglePause()
		if !paused {
			e.dragging = false
		}
		e.emit(event.CuePause)
	case IntentClear:
		e.edit.Reset()
		e.dragging = false
		e.emit(event.CueDelete)
	case IntentLockHover:
		if e.edit.Paused() {
			e.toggleLockAt(e.cursor)
		}
	case IntentPress, IntentRelease, IntentMove:
		e.pointer(in)
	}
}

func (e *Editor) pointer(in Intent) {
	pos := e.cam.CellToWorld(in.X, in.Y)
	e.cursor = pos
	target, hit := e.edit.PointAt(pos, e.cam.PickRadius(e.pickRadius))

	if in.Type == IntentPress && in.Button == ButtonRight && hit {
		if err := e.edit.RemovePoint(target); err == nil {
			if e.dragging && e.origin == target {
				e.dragging = false
			}
			e.emit(event.CueDelete)
		}
	}

	if !e.edit.Paused() {
		e.dragging = false
		return
	}

	if e.dragging {
		if in.Type == IntentRelease && in.Button == ButtonLeft {
			e.dragging = false
			if hit && target != e.origin {
				e.link(e.origin, target)
			}
		}
		return
	}

	if in.Type != IntentPress {
		return
	}
	switch {
	case in.Button == ButtonLeft && hit:
		e.dragging = true
		e.origin = target
	case in.Button == ButtonLeft:
		e.edit.InsertPoint(pos)
		e.emit(event.CuePlace)
	case in.Button == ButtonMiddle && hit:
		e.toggleLockAt(pos)
	}
}

func (e *Editor) link(a, b core.ID) {
	if _, err := e.edit.InsertLink(a, b); err != nil {
		e.log.Debug("link rejected", zap.Error(err))
		e.emit(event.CueReject)
		return
	}
	e.emit(event.CueLink)
}

func (e *Editor) toggleLockAt(pos mgl64.Vec2) {
	id, ok := e.edit.PointAt(pos, e.cam.PickRadius(e.pickRadius))
	if !ok {
		return
	}
	if _, err := e.edit.ToggleLock(id); err == nil {
		e.emit(event.CueLock)
	}
}

func (e *Editor) emit(c event.Cue) {
	e.cues = append(e.cues, c)
}

// DrainCues returns and clears cues emitted since the last call
func (e *Editor) DrainCues() []event.Cue {
	out := e.cues
	e.cues = nil
	return out
}

// Quit reports whether a quit intent was seen
func (e *Editor) Quit() bool {
	return e.quit
}

// Preview returns the link drag line from its origin to the cursor
func (e *Editor) Preview() render.Preview {
	if !e.dragging {
		return render.Preview{}
	}
	p, ok := e.edit.Point(e.origin)
	if !ok {
		return render.Preview{}
	}
	return render.Preview{From: p.Pos, To: e.cursor, Active: true}
}
