package terminal

import (
	"bytes"
	"io"
	"sync"
	"time"
)

// fakeBackend records output and serves scripted input without a tty
type fakeBackend struct {
	mu  sync.Mutex
	out bytes.Buffer

	reads chan []byte // Closed channel reads as io.EOF

	initErr  error
	writeErr error
	sizeErr  error
	width    int
	height   int

	inits int
	finis int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		reads:  make(chan []byte, 16),
		width:  80,
		height: 24,
	}
}

func (b *fakeBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inits++
	return b.initErr
}

func (b *fakeBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finis++
}

func (b *fakeBackend) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height, b.sizeErr
}

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return 0, b.writeErr
	}
	return b.out.Write(p)
}

func (b *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case <-stopCh:
		return nil, nil
	case data, ok := <-b.reads:
		if !ok {
			return nil, io.EOF
		}
		return data, nil
	case <-time.After(5 * time.Millisecond):
		return nil, nil
	}
}

func (b *fakeBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

func (b *fakeBackend) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Reset()
}

func (b *fakeBackend) counts() (inits, finis int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inits, b.finis
}
