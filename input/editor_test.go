package input

import (
	"testing"
	"time"

	"github.com/lixenwraith/ropesim/core"
	"github.com/lixenwraith/ropesim/engine"
	"github.com/lixenwraith/ropesim/event"
	"github.com/lixenwraith/ropesim/parameter"
	"github.com/lixenwraith/ropesim/physics"
	"github.com/lixenwraith/ropesim/render"
)

func newTestEditor() (*Editor, *engine.Session) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	ts := engine.NewTickScheduler(engine.DefaultSchedulerConfig(), physics.DefaultIntegrator(), clock, nil)
	s := engine.NewSession(ts)
	cam := render.NewCamera(80, 40, parameter.RenderScale)
	return NewEditor(s, cam, parameter.PickRadius, nil), s
}

func click(e *Editor, b Button, x, y int) {
	e.Apply(Intent{Type: IntentPress, Button: b, X: x, Y: y})
	e.Apply(Intent{Type: IntentRelease, Button: b, X: x, Y: y})
}

func drag(e *Editor, fromX, fromY, toX, toY int) {
	e.Apply(Intent{Type: IntentPress, Button: ButtonLeft, X: fromX, Y: fromY})
	e.Apply(Intent{Type: IntentMove, X: toX, Y: toY})
	e.Apply(Intent{Type: IntentRelease, Button: ButtonLeft, X: toX, Y: toY})
}

func next(s *engine.Session) *core.State {
	_, n, _ := s.Snapshot()
	return n
}

func TestEditor_PlaceAndLink(t *testing.T) {
	e, s := newTestEditor()

	click(e, ButtonLeft, 10, 10)
	click(e, ButtonLeft, 30, 10)
	if n := next(s).PointCount(); n != 2 {
		t.Fatalf("placed %d points, want 2", n)
	}

	drag(e, 10, 10, 30, 10)
	if n := next(s).LinkCount(); n != 1 {
		t.Fatalf("drag created %d links, want 1", n)
	}

	// Dragging again between the same pair is rejected
	drag(e, 30, 10, 10, 10)
	if n := next(s).LinkCount(); n != 1 {
		t.Errorf("duplicate link created: %d links", n)
	}

	cues := e.DrainCues()
	want := []event.Cue{event.CuePlace, event.CuePlace, event.CueLink, event.CueReject}
	if len(cues) != len(want) {
		t.Fatalf("cues = %v, want %v", cues, want)
	}
	for i := range want {
		if cues[i] != want[i] {
			t.Errorf("cue %d = %v, want %v", i, cues[i], want[i])
		}
	}
	if len(e.DrainCues()) != 0 {
		t.Error("DrainCues did not clear")
	}
}

func TestEditor_DragReleasedOnEmptySpace(t *testing.T) {
	e, s := newTestEditor()
	click(e, ButtonLeft, 10, 10)

	e.Apply(Intent{Type: IntentPress, Button: ButtonLeft, X: 10, Y: 10})
	e.Apply(Intent{Type: IntentMove, X: 50, Y: 20})
	if p := e.Preview(); !p.Active {
		t.Error("preview inactive during drag")
	}
	e.Apply(Intent{Type: IntentRelease, Button: ButtonLeft, X: 50, Y: 20})

	if next(s).LinkCount() != 0 || next(s).PointCount() != 1 {
		t.Errorf("release on empty space changed scene: %d points %d links", next(s).PointCount(), next(s).LinkCount())
	}
	if e.Preview().Active {
		t.Error("preview still active after release")
	}
}

func TestEditor_RightClickDeletesWithLinks(t *testing.T) {
	e, s := newTestEditor()
	click(e, ButtonLeft, 10, 10)
	click(e, ButtonLeft, 30, 10)
	click(e, ButtonLeft, 50, 10)
	drag(e, 10, 10, 30, 10)
	drag(e, 30, 10, 50, 10)

	hub, _ := next(s).PointAt(e.Camera().CellToWorld(30, 10), 0.5)

	// Deletion is allowed while running
	e.Apply(Intent{Type: IntentTogglePause})
	click(e, ButtonRight, 30, 10)

	if next(s).PointCount() != 2 {
		t.Errorf("point count = %d, want 2", next(s).PointCount())
	}
	for _, l := range next(s).Links() {
		if l.Touches(hub) {
			t.Errorf("link %d references deleted point", l.ID)
		}
	}
	if next(s).LinkCount() != 0 {
		t.Errorf("link count = %d, want 0", next(s).LinkCount())
	}
}

func TestEditor_RunningBlocksAuthoring(t *testing.T) {
	e, s := newTestEditor()
	click(e, ButtonLeft, 10, 10)

	e.Apply(Intent{Type: IntentTogglePause})
	if s.Paused() {
		t.Fatal("toggle did not resume")
	}

	click(e, ButtonLeft, 40, 20)
	click(e, ButtonMiddle, 10, 10)
	if next(s).PointCount() != 1 {
		t.Error("placement happened while running")
	}
	if p := next(s).Points()[0]; p.Locked {
		t.Error("lock toggled while running")
	}
}

func TestEditor_LockByMiddleAndKey(t *testing.T) {
	e, s := newTestEditor()
	click(e, ButtonLeft, 10, 10)

	click(e, ButtonMiddle, 10, 10)
	if !next(s).Points()[0].Locked {
		t.Fatal("middle click did not lock")
	}

	e.Apply(Intent{Type: IntentMove, X: 10, Y: 10})
	e.Apply(Intent{Type: IntentLockHover})
	if next(s).Points()[0].Locked {
		t.Error("lock key did not unlock hovered point")
	}
}

func TestEditor_ClearAndQuit(t *testing.T) {
	e, s := newTestEditor()
	click(e, ButtonLeft, 10, 10)
	e.Apply(Intent{Type: IntentClear})
	if next(s).PointCount() != 0 {
		t.Error("clear left points")
	}

	if e.Quit() {
		t.Error("quit before intent")
	}
	e.Apply(Intent{Type: IntentQuit})
	if !e.Quit() {
		t.Error("quit intent ignored")
	}
}
