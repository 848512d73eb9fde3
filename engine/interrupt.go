package engine

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lixenwraith/horse/core"
)

// NotifyInterrupt fires quit on the first SIGINT or SIGTERM
// The returned stop func unregisters the handler and may be called more than once
func NotifyInterrupt(quit *Quit) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	stopCh := make(chan struct{})
	core.Go(func() {
		select {
		case sig := <-sigCh:
			quit.Fire("signal " + sig.String())
		case <-quit.Done():
		case <-stopCh:
		}
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(stopCh)
		})
	}
}
