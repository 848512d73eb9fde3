//go:build !unix

package terminal

import (
	"io"
)

// otherBackend refuses Init; callers fall back to a tcell-driven display
type otherBackend struct{}

func newBackend() Backend {
	return otherBackend{}
}

func (otherBackend) Init() error { return ErrUnsupported }

func (otherBackend) Fini() {}

func (otherBackend) Size() (int, int, error) { return 0, 0, ErrUnsupported }

func (otherBackend) Write(p []byte) (int, error) { return 0, ErrUnsupported }

func (otherBackend) Read(stopCh <-chan struct{}) ([]byte, error) { return nil, io.EOF }
