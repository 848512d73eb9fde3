package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrClosed is returned by drawing calls after Fini
var ErrClosed = errors.New("terminal closed")

// Terminal provides raw-mode, alternate-screen access for full-screen redraws
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor and starts the input reader
	Init() error

	// Fini restores terminal state. Safe to call multiple times and from any goroutine
	Fini()

	// Size queries current terminal dimensions
	Size() (width, height int, err error)

	// Clear homes the cursor and clears to the end of the screen
	Clear() error

	// DrawString writes s starting at column x, row y (0-indexed)
	DrawString(x, y int, s string) error

	// Show flushes buffered output to the terminal
	Show() error

	// Events returns the input event channel
	Events() <-chan Event
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	writer  *bufio.Writer
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout
func New() Terminal {
	return newTerminal(newBackend())
}

func newTerminal(b Backend) *termImpl {
	return &termImpl{
		backend: b,
		writer:  bufio.NewWriterSize(backendWriter{b}, 16384),
		input:   newInputReader(b),
	}
}

// backendWriter adapts Backend to io.Writer for buffering
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrClosed
	}
	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	// Enter alternate screen, hide cursor, disable auto-wrap, clear
	w := t.writer
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	w.Write(csiAutoWrapOff)
	w.Write(csiClearAll)
	if err := w.Flush(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("enter alternate screen: %w", err)
	}

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true

	t.input.stop()

	// Drop any half-written frame, then restore through the raw backend
	t.writer.Reset(backendWriter{t.backend})
	t.backend.Write(csiSGR0)
	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alternate screen so the main buffer has it
	t.backend.Write(csiAutoWrapOn)

	t.backend.Fini()
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int, error) {
	return t.backend.Size()
}

// Clear homes the cursor and clears to the end of the screen
func (t *termImpl) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrClosed
	}

	t.writer.Write(csiHome)
	if _, err := t.writer.Write(csiClearBelow); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// DrawString positions the cursor and writes s
func (t *termImpl) DrawString(x, y int, s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrClosed
	}

	writeCursorPos(t.writer, x, y)
	// bufio errors are sticky, so this reports a failed cursor move too
	if _, err := t.writer.WriteString(s); err != nil {
		return fmt.Errorf("draw at %d,%d: %w", x, y, err)
	}
	return nil
}

// Show flushes the buffered frame
func (t *termImpl) Show() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return ErrClosed
	}

	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Events returns the input event channel
func (t *termImpl) Events() <-chan Event {
	return t.input.events()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored in crash context
	resetTerminalMode()
}
