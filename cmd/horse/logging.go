package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/horse/parameter"
)

// setupLogging returns the parade logger and its open file, nil unless debug
// Stdout is the animation surface, so without debug every log is discarded
// and the standard library logger is silenced as well
func setupLogging(debug bool) (*log.Logger, *os.File) {
	stdlog.SetOutput(io.Discard)
	discard := log.New(io.Discard)

	if !debug {
		return discard, nil
	}

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		return discard, nil
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)

	// Rotate an oversized log out of the way
	if info, err := os.Stat(logPath); err == nil && info.Size() > parameter.MaxLogSize {
		rotated := filepath.Join(parameter.LogDir, fmt.Sprintf("horse-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard, nil
	}

	stdlog.SetOutput(f)
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "horse",
	})
	return logger, f
}
