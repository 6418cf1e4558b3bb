package parameter

import "time"

// Cue tones
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CueDuration is the length of a single cue tone
	CueDuration = 60 * time.Millisecond

	// CueVolume is the beep effects.Volume attenuation (base 2)
	CueVolume = -2.0
)
