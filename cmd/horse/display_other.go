//go:build !unix

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horse/engine"
	"github.com/lixenwraith/horse/render"
)

// newDisplay falls back to tcell where the raw ANSI backend is unsupported
func newDisplay() (engine.Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return render.NewTcellDisplay(screen), nil
}
