package parameter

// Debug Logging
const (
	// LogDir is the directory debug logs are written to, relative to the working directory
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "horse.log"

	// MaxLogSize is the size in bytes past which the debug log is rotated on startup
	MaxLogSize = 10 * 1024 * 1024
)
