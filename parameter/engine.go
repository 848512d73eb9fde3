package parameter

import "time"

// Render Loop Timing
const (
	// FrameRate is the number of render ticks per second
	FrameRate = 30

	// FrameInterval is the fixed pacing between render ticks
	FrameInterval = time.Second / FrameRate
)

// Input Timing
const (
	// InputPollInterval bounds each stdin poll so quit latency stays low
	InputPollInterval = 100 * time.Millisecond

	// EscapeTimeout is how long a lone ESC byte waits for a sequence tail before it is reported as the Escape key
	EscapeTimeout = 50 * time.Millisecond
)
