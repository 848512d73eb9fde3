package engine

import (
	"errors"
	"sync"

	"github.com/lixenwraith/horse/terminal"
)

var errInjected = errors.New("injected failure")

// fakeDisplay is an in-memory Display recording draws and teardown
type fakeDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	draws  []string
	shows  int
	inits  int
	finis  int
	events chan terminal.Event

	initErr  error
	sizeErr  error
	showErr  error
	failShow int // Fail on this Show call, 1-based; 0 never
}

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{
		width:  w,
		height: h,
		events: make(chan terminal.Event, 16),
	}
}

func (d *fakeDisplay) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inits++
	return d.initErr
}

func (d *fakeDisplay) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.finis++
}

func (d *fakeDisplay) Size() (int, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height, d.sizeErr
}

func (d *fakeDisplay) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draws = d.draws[:0]
	return nil
}

func (d *fakeDisplay) DrawString(x, y int, s string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draws = append(d.draws, s)
	return nil
}

func (d *fakeDisplay) Show() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shows++
	if d.failShow > 0 && d.shows == d.failShow {
		return d.showErr
	}
	return nil
}

func (d *fakeDisplay) Events() <-chan terminal.Event {
	return d.events
}

func (d *fakeDisplay) setSize(w, h int) {
	d.mu.Lock()
	d.width, d.height = w, h
	d.mu.Unlock()
}

func (d *fakeDisplay) counts() (inits, finis, shows int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inits, d.finis, d.shows
}

func keyEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}
