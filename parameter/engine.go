package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputChannelSize is the buffer between the event poller and the game loop
	InputChannelSize = 256
)

// Event Queue Limits
const (
	// EventQueueSize caps events pending between two drains
	EventQueueSize = 256
)

// Key Hold Emulation
const (
	// KeyHoldInitial is how long a single key press is treated as held.
	// Covers the terminal's auto-repeat start delay.
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat extends a hold on every auto-repeat event
	KeyHoldRepeat = 120 * time.Millisecond
)
