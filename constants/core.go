package constants

import "time"

// Frame pacing
const (
	// FrameUpdateInterval is the redraw cadence while a round is running
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event ring sizing, EventQueueSize must stay a power of two
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
