package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/horse/terminal"
)

// Finalizer restores whatever the process changed on the terminal
type Finalizer interface {
	Fini()
}

var (
	crashMu      sync.Mutex
	crashDisplay Finalizer

	// Overridden in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashDisplay registers the display to finalize before a crash report
// Nil falls back to a raw escape-sequence reset of stdout
func SetCrashDisplay(d Finalizer) {
	crashMu.Lock()
	crashDisplay = d
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	d := crashDisplay
	crashMu.Unlock()

	// Restore terminal to sane state immediately
	if d != nil {
		d.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	// \r\n keeps lines aligned if raw mode survived the reset
	fmt.Fprintf(crashOut, "\r\n\x1b[31mHORSE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
