package engine

import (
	"sync"
)

// Quit reasons reported by the watcher and interrupt handler
const (
	ReasonInputClosed = "input closed"
)

// Quit is a one-shot shutdown signal
// Any number of goroutines may Fire; only the first reason is kept
type Quit struct {
	once   sync.Once
	done   chan struct{}
	reason string
}

// NewQuit creates an unfired quit signal
func NewQuit() *Quit {
	return &Quit{done: make(chan struct{})}
}

// Fire records reason and closes Done. Reports whether this call fired
func (q *Quit) Fire(reason string) bool {
	fired := false
	q.once.Do(func() {
		q.reason = reason
		close(q.done)
		fired = true
	})
	return fired
}

// Done is closed once Fire has been called
func (q *Quit) Done() <-chan struct{} {
	return q.done
}

// Fired reports whether quit has been requested
func (q *Quit) Fired() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}

// Reason returns the first Fire reason, empty before Fire
func (q *Quit) Reason() string {
	if !q.Fired() {
		return ""
	}
	return q.reason
}
