package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/horse/core"
	"github.com/lixenwraith/horse/terminal"
)

// TcellDisplay drives a tcell.Screen as a Surface and translates its key events
// Used where the raw ANSI backend is unavailable, and with simulation screens in tests
type TcellDisplay struct {
	screen tcell.Screen
	style  tcell.Style
	events chan terminal.Event

	mu      sync.Mutex
	started bool
	closed  bool
	doneCh  chan struct{}
}

// NewTcellDisplay wraps screen; call Init before use
func NewTcellDisplay(screen tcell.Screen) *TcellDisplay {
	return &TcellDisplay{
		screen: screen,
		style:  tcell.StyleDefault,
		events: make(chan terminal.Event, 64),
		doneCh: make(chan struct{}),
	}
}

// Init initializes the screen (raw mode, alternate screen), hides the cursor and starts event polling
func (d *TcellDisplay) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return terminal.ErrClosed
	}
	if d.started {
		return nil
	}

	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	d.screen.HideCursor()
	d.screen.Clear()

	d.started = true
	core.Go(d.pollLoop)
	return nil
}

// Fini restores the terminal. Safe to call multiple times and from any goroutine
func (d *TcellDisplay) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started || d.closed {
		d.closed = true
		return
	}
	d.closed = true

	d.screen.Fini()
	<-d.doneCh
}

// pollLoop forwards key events until the screen is finalized
func (d *TcellDisplay) pollLoop() {
	defer close(d.doneCh)

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			d.send(terminal.Event{Type: terminal.EventClosed})
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			if tev, ok := translateKey(key); ok {
				d.send(tev)
			}
		}
	}
}

func (d *TcellDisplay) send(ev terminal.Event) {
	select {
	case d.events <- ev:
	default:
		// Channel full, drop event
	}
}

// translateKey maps the tcell keys the parade cares about onto terminal events
func translateKey(ev *tcell.EventKey) (terminal.Event, bool) {
	out := terminal.Event{Type: terminal.EventKey}

	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		out.Modifiers |= terminal.ModShift
	}
	if mods&tcell.ModAlt != 0 {
		out.Modifiers |= terminal.ModAlt
	}

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			out.Key = terminal.KeyCtrlA + terminal.Key(r-'a')
			break
		}
		out.Key = terminal.KeyRune
		out.Rune = r
	case tcell.KeyEscape:
		out.Key = terminal.KeyEscape
	case tcell.KeyCtrlC:
		out.Key = terminal.KeyCtrlC
	case tcell.KeyEnter:
		out.Key = terminal.KeyEnter
	case tcell.KeyTab:
		out.Key = terminal.KeyTab
	case tcell.KeyUp:
		out.Key = terminal.KeyUp
	case tcell.KeyDown:
		out.Key = terminal.KeyDown
	case tcell.KeyLeft:
		out.Key = terminal.KeyLeft
	case tcell.KeyRight:
		out.Key = terminal.KeyRight
	default:
		return terminal.Event{}, false
	}
	return out, true
}

// Events returns translated key events; EventClosed follows Fini
func (d *TcellDisplay) Events() <-chan terminal.Event {
	return d.events
}

// Size returns the screen size; tcell tracks resizes itself
func (d *TcellDisplay) Size() (int, int, error) {
	w, h := d.screen.Size()
	return w, h, nil
}

// Clear blanks the back buffer
func (d *TcellDisplay) Clear() error {
	d.screen.Clear()
	return nil
}

// DrawString places s rune by rune from column x, advancing by cell width
func (d *TcellDisplay) DrawString(x, y int, s string) error {
	col := x
	for _, r := range s {
		d.screen.SetContent(col, y, r, nil, d.style)
		col += runewidth.RuneWidth(r)
	}
	return nil
}

// Show flushes the back buffer to the terminal
func (d *TcellDisplay) Show() error {
	d.screen.Show()
	return nil
}
