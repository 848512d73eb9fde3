package parameter

// Parade Motion & Spawning
const (
	// ScrollSpeed is the columns every frame moves left per tick
	ScrollSpeed = 1

	// Spacing is the gap in columns between a frame's right edge and the next frame
	Spacing = 10

	// SpawnLookaheadPercent extends the spawn threshold past the right edge by this share of the terminal width.
	// 50 spawns the next frame while the rightmost one still ends within width + width/2
	SpawnLookaheadPercent = 50
)
