package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the render and simulation step interval (~60 FPS)
	// Physics constants are tuned per step at this nominal rate, there is no fixed-timestep accumulator
	FrameUpdateInterval = 16 * time.Millisecond

	// TimerInterval is the wall-clock cadence of the match countdown
	TimerInterval = 1 * time.Second

	// InputChannelSize buffers translated terminal events between poller and loop
	InputChannelSize = 256
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = EventQueueSize - 1
)
