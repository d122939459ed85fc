package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed simulation step
	TickInterval = 33 * time.Millisecond

	// FrameRate is the default render frame rate (frames per second)
	FrameRate = 60

	// FrameUpdateInterval is the render interval at the default frame rate
	FrameUpdateInterval = time.Second / FrameRate

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)
