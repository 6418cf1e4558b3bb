package parameter

// Simulation Loop & Scheduler
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// MaxCatchUpTicks caps ticks run in one poll after a stall
	MaxCatchUpTicks = 5

	// MaxBacklogTicks bounds time carried over after a capped poll, 0 disables the bound
	MaxBacklogTicks = 0

	// ClampInterpolation clamps the render interpolation factor to [0, 1]
	ClampInterpolation = false

	// FrameRate is the render/poll rate of the front-end
	FrameRate = 60

	// EventQueueSize is the buffered capacity between the tcell reader and the main loop
	EventQueueSize = 128
)

// IDStart is the first id a fresh session hands out
const IDStart = 0
