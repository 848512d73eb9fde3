package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/horse/catalog"
	"github.com/lixenwraith/horse/core"
)

// Run owns a display for one parade: Init, watch input, loop until quit, Fini
// Fini runs exactly once on the calling goroutine, however many quit sources fire
// Returns nil on quit and the first init or tick error otherwise
func Run(display Display, picker *catalog.Picker, cfg Config, quit *Quit, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := display.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer display.Fini()

	core.SetCrashDisplay(display)
	defer core.SetCrashDisplay(nil)

	stage := NewStage(display, picker, cfg, logger)
	if w, h, err := display.Size(); err == nil {
		logger.Info("parade start", "width", w, "height", h)
	}

	core.Go(NewWatcher(display, quit, logger).Run)

	if err := stage.Run(quit.Done()); err != nil {
		logger.Error("parade aborted", append([]any{"err", err}, stage.Stats().Fields()...)...)
		// Release the watcher
		quit.Fire(err.Error())
		return err
	}

	logger.Info("parade quit", append([]any{"reason", quit.Reason()}, stage.Stats().Fields()...)...)
	return nil
}
