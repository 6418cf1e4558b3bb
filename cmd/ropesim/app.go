package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ropesim/config"
	"github.com/lixenwraith/ropesim/engine"
	"github.com/lixenwraith/ropesim/event"
	"github.com/lixenwraith/ropesim/input"
	"github.com/lixenwraith/ropesim/parameter"
	"github.com/lixenwraith/ropesim/physics"
	"github.com/lixenwraith/ropesim/render"
)

// cueSink receives editing cues; audio.CuePlayer implements it
type cueSink interface {
	PlayAll(cues []event.Cue)
	ToggleMute() bool
}

type nopCues struct{}

func (nopCues) PlayAll([]event.Cue) {}
func (nopCues) ToggleMute() bool    { return true }

// app owns the screen and drives session, editor and renderer from one goroutine
type app struct {
	screen  tcell.Screen
	session *engine.Session
	editor  *input.Editor
	machine *input.Machine
	cues    cueSink
	log     *zap.Logger

	renderScale   float64
	frameInterval time.Duration
}

func newApp(screen tcell.Screen, cfg *config.Config, clock engine.TimeProvider, cues cueSink, log *zap.Logger) *app {
	if cues == nil {
		cues = nopCues{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	integrator := physics.NewIntegrator(cfg.Simulation.Gravity, cfg.Simulation.Iterations)
	scheduler := engine.NewTickScheduler(cfg.Scheduler(), integrator, clock, log)
	session := engine.NewSession(scheduler,
		engine.WithLogger(log),
		engine.WithValidation(log.Core().Enabled(zap.DebugLevel)),
		engine.WithIDStart(parameter.IDStart),
	)

	w, h := screen.Size()
	cam := render.NewCamera(w, h, cfg.Display.RenderScale)

	return &app{
		screen:        screen,
		session:       session,
		editor:        input.NewEditor(session, cam, cfg.Display.PickRadius, log),
		machine:       input.NewMachine(),
		cues:          cues,
		log:           log,
		renderScale:   cfg.Display.RenderScale,
		frameInterval: time.Second / time.Duration(cfg.Display.FrameRate),
	}
}

// handle routes one terminal event and reports whether the app keeps running
func (a *app) handle(ev tcell.Event) bool {
	for _, in := range a.machine.Parse(ev) {
		switch in.Type {
		case input.IntentResize:
			cam := a.editor.Camera()
			cam.Resize(in.X, in.Y, a.renderScale)
			a.editor.SetCamera(cam)
			a.screen.Sync()
			a.log.Debug("resize", zap.Int("width", in.X), zap.Int("height", in.Y))
		case input.IntentToggleMute:
			muted := a.cues.ToggleMute()
			a.log.Debug("mute toggled", zap.Bool("muted", muted))
		default:
			a.editor.Apply(in)
		}
	}
	return !a.editor.Quit()
}

// frame advances the simulation to now and draws it
func (a *app) frame() {
	a.cues.PlayAll(a.editor.DrainCues())

	a.session.Poll()
	current, next, interp := a.session.Snapshot()
	ts := a.session.Scheduler()

	render.Draw(a.screen, a.editor.Camera(), render.BuildFrame(current, next, interp), a.editor.Preview(), render.HUD{
		Paused:  a.session.Paused(),
		Points:  next.PointCount(),
		Links:   next.LinkCount(),
		Ticks:   ts.Ticks(),
		Interp:  interp,
		Dropped: ts.Dropped(),
	})
}

// run is the main loop; events arrive from a reader goroutine, frames from a ticker
func (a *app) run(events <-chan tcell.Event) {
	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
