package terminal

import (
	"errors"
)

// ErrUnsupported is returned by Init on platforms without a raw ANSI backend
var ErrUnsupported = errors.New("raw terminal backend unsupported on this platform")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init
	Fini()

	// Size queries the current window size
	Size() (width, height int, err error)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read waits at most one poll interval for input.
	// Returns nil data on timeout or when stopCh is closed, io.EOF when input is closed
	Read(stopCh <-chan struct{}) ([]byte, error)
}
