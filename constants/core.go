package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the tick interval (~30 FPS, terminal-friendly)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxTickDelta caps dt after a stall so physics stays stable
	MaxTickDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// InputChannelSize buffers terminal events between poller and tick loop
	InputChannelSize = 64
)
