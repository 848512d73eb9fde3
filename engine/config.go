package engine

import (
	"time"

	"github.com/lixenwraith/horse/parameter"
)

// Config holds the stage tunables
type Config struct {
	FrameInterval    time.Duration
	ScrollSpeed      int // Columns per tick
	Spacing          int // Gap between consecutive frames
	LookaheadPercent int // Spawn threshold past the right edge, percent of width
}

// DefaultConfig returns the parade defaults from package parameter
func DefaultConfig() Config {
	return Config{
		FrameInterval:    parameter.FrameInterval,
		ScrollSpeed:      parameter.ScrollSpeed,
		Spacing:          parameter.Spacing,
		LookaheadPercent: parameter.SpawnLookaheadPercent,
	}
}
