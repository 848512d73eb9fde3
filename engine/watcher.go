package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/horse/terminal"
)

// EventSource delivers decoded key events
type EventSource interface {
	Events() <-chan terminal.Event
}

// IsQuitKey reports whether ev ends the parade: q, Q, Escape or Ctrl+C
func IsQuitKey(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyRune:
		return ev.Rune == 'q' || ev.Rune == 'Q'
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return true
	}
	return false
}

// Watcher turns quit keys and input loss into a Quit
type Watcher struct {
	src    EventSource
	quit   *Quit
	logger *log.Logger
}

// NewWatcher creates a watcher over src firing quit
func NewWatcher(src EventSource, quit *Quit, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{
		src:    src,
		quit:   quit,
		logger: logger,
	}
}

// Run consumes events until a quit key, input loss, or quit fired elsewhere
// Other keys are ignored
func (w *Watcher) Run() {
	events := w.src.Events()
	for {
		select {
		case <-w.quit.Done():
			return

		case ev, ok := <-events:
			if !ok {
				w.quit.Fire(ReasonInputClosed)
				return
			}

			switch ev.Type {
			case terminal.EventKey:
				if IsQuitKey(ev) {
					w.quit.Fire("key " + ev.String())
					return
				}
				w.logger.Debug("key ignored", "key", ev.String())

			case terminal.EventError:
				w.logger.Warn("input error", "err", ev.Err)
				w.quit.Fire(ReasonInputClosed)
				return

			case terminal.EventClosed:
				w.quit.Fire(ReasonInputClosed)
				return
			}
		}
	}
}
