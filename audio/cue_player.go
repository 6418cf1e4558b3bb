package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ropesim/event"
	"github.com/lixenwraith/ropesim/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// tone describes the sound of a cue
type tone struct {
	from, to float64
	wave     WaveType
}

var cueTones = map[event.Cue]tone{
	event.CuePlace:  {660, 660, WaveSine},
	event.CueLink:   {440, 880, WaveTriangle},
	event.CueDelete: {330, 110, WaveSquare},
	event.CueLock:   {990, 990, WaveSquare},
	event.CuePause:  {520, 390, WaveSine},
	event.CueReject: {120, 120, WaveSquare},
}

// CuePlayer plays short tones for editing cues through the beep speaker
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCuePlayer creates an uninitialized player
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(cp.mixer)
	cp.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	cp.initialized = false
}

// Play queues the tone for c
func (cp *CuePlayer) Play(c event.Cue) {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized || cp.muted {
		return
	}
	streamer := cueStreamer(c)
	if streamer == nil {
		return
	}
	// Mixer is consumed on the speaker goroutine
	speaker.Lock()
	cp.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayAll plays cues in order
func (cp *CuePlayer) PlayAll(cues []event.Cue) {
	for _, c := range cues {
		cp.Play(c)
	}
}

// ToggleMute flips mute and returns the new value
func (cp *CuePlayer) ToggleMute() bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.muted = !cp.muted
	return cp.muted
}

// SetMuted sets mute
func (cp *CuePlayer) SetMuted(m bool) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.muted = m
}

// Muted reports mute state
func (cp *CuePlayer) Muted() bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.muted
}

// cueStreamer builds the attenuated tone for c, nil for unknown cues
func cueStreamer(c event.Cue) beep.Streamer {
	t, ok := cueTones[c]
	if !ok {
		return nil
	}
	return &effects.Volume{
		Streamer: NewOscillator(t.from, t.to, parameter.CueDuration, t.wave, sampleRate),
		Base:     2,
		Volume:   parameter.CueVolume,
	}
}
