package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/horse/terminal"
)

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.Event
		want bool
	}{
		{name: "q", ev: keyEvent('q'), want: true},
		{name: "Q", ev: keyEvent('Q'), want: true},
		{name: "escape", ev: terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape}, want: true},
		{name: "ctrl+c", ev: terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC}, want: true},
		{name: "x", ev: keyEvent('x'), want: false},
		{name: "space", ev: keyEvent(' '), want: false},
		{name: "enter", ev: terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEnter}, want: false},
		{name: "ctrl+d", ev: terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlD}, want: false},
		{name: "closed event", ev: terminal.Event{Type: terminal.EventClosed}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsQuitKey(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

type chanSource chan terminal.Event

func (c chanSource) Events() <-chan terminal.Event { return c }

// runWatcher starts w and returns a channel closed when Run returns
func runWatcher(w *Watcher) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watcher did not return")
	}
}

func TestWatcher_QuitKey(t *testing.T) {
	src := make(chanSource, 4)
	quit := NewQuit()
	done := runWatcher(NewWatcher(src, quit, nil))

	src <- keyEvent('x')
	src <- keyEvent('a')
	src <- keyEvent('q')
	waitDone(t, done)

	if quit.Reason() != "key q" {
		t.Errorf("Expected reason 'key q', got %q", quit.Reason())
	}
}

func TestWatcher_InputLoss(t *testing.T) {
	tests := []struct {
		name string
		send func(chanSource)
	}{
		{name: "closed event", send: func(c chanSource) { c <- terminal.Event{Type: terminal.EventClosed} }},
		{name: "error event", send: func(c chanSource) {
			c <- terminal.Event{Type: terminal.EventError, Err: errors.New("read failed")}
		}},
		{name: "closed channel", send: func(c chanSource) { close(c) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := make(chanSource, 1)
			quit := NewQuit()
			done := runWatcher(NewWatcher(src, quit, nil))

			tt.send(src)
			waitDone(t, done)

			if quit.Reason() != ReasonInputClosed {
				t.Errorf("Expected reason %q, got %q", ReasonInputClosed, quit.Reason())
			}
		})
	}
}

func TestWatcher_ReturnsWhenQuitElsewhere(t *testing.T) {
	src := make(chanSource)
	quit := NewQuit()
	done := runWatcher(NewWatcher(src, quit, nil))

	quit.Fire("signal interrupt")
	waitDone(t, done)

	if quit.Reason() != "signal interrupt" {
		t.Errorf("Expected first reason kept, got %q", quit.Reason())
	}
}
