//go:build unix

package main

import (
	"github.com/lixenwraith/horse/engine"
	"github.com/lixenwraith/horse/terminal"
)

// newDisplay returns the raw ANSI terminal
func newDisplay() (engine.Display, error) {
	return terminal.New(), nil
}
