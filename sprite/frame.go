// @lixen: #focus{parade[sprite,motion]}
package sprite

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/horse/catalog"
)

// Frame is one scrolling artwork instance
// Width and Height are fixed at creation, only X moves
type Frame struct {
	Art    catalog.Artwork
	Width  int
	Height int
	X      int // Left column, negative when partially past the left edge
}

// NewFrame measures art once and places it at column x
// Width is the widest line in terminal cells, Height the line count
func NewFrame(art catalog.Artwork, x int) *Frame {
	width := 0
	for _, line := range art.Lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return &Frame{
		Art:    art,
		Width:  width,
		Height: len(art.Lines),
		X:      x,
	}
}

// RightEdge returns the column just past the frame's widest line
func (f *Frame) RightEdge() int {
	return f.X + f.Width
}

// Scroll shifts the frame horizontally by dx columns
func (f *Frame) Scroll(dx int) {
	f.X += dx
}

// OffscreenLeft reports whether the frame has fully passed column 0
func (f *Frame) OffscreenLeft() bool {
	return f.RightEdge() < 0
}
