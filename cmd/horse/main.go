package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/horse/catalog"
	"github.com/lixenwraith/horse/core"
	"github.com/lixenwraith/horse/engine"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

var errorColor = color.New(color.FgRed)

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "horse",
		Short: "Scroll a parade of ASCII-art horses across the terminal",
		Long: `Runs a continuous parade of ASCII-art horses moving right to left.

Press q, Q, Esc or Ctrl+C to quit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParade(debug)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "write debug logs to the logs directory")
	_ = cmd.Flags().MarkHidden("debug")

	return cmd
}

func runParade(debug bool) error {
	logger, logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}

	display, err := newDisplay()
	if err != nil {
		return err
	}

	cat := catalog.Default()
	logger.Info("catalog loaded", "artworks", cat.Len(), "names", cat.Names())

	quit := engine.NewQuit()
	stopSignals := engine.NotifyInterrupt(quit)
	defer stopSignals()

	return engine.Run(display, catalog.NewPicker(cat, nil), engine.DefaultConfig(), quit, logger)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the parade crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "horse: %v\n", err)
		os.Exit(1)
	}
}
