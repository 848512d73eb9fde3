package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/horse/sprite"
)

// Span is one clipped run of text at a screen position
type Span struct {
	X    int
	Y    int
	Text string
}

// Top returns the first row that vertically centers a frame of frameHeight rows, never negative
func Top(height, frameHeight int) int {
	return max((height-frameHeight)/2, 0)
}

// Layout clips frames against a width x height screen, in frame order
func Layout(width, height int, frames []*sprite.Frame) []Span {
	return AppendLayout(nil, width, height, frames)
}

// AppendLayout is Layout appending into dst for buffer reuse across ticks
func AppendLayout(dst []Span, width, height int, frames []*sprite.Frame) []Span {
	for _, f := range frames {
		top := Top(height, f.Height)
		for i, line := range f.Art.Lines {
			y := top + i
			if y < 0 || y >= height {
				continue
			}
			x, text, ok := ClipLine(line, f.X, width)
			if !ok {
				continue
			}
			dst = append(dst, Span{X: x, Y: y, Text: text})
		}
	}
	return dst
}

// ClipLine returns the part of line placed at column x that falls in [0, width),
// and the column it starts at. Columns are terminal cells; a wide rune
// straddling either edge is dropped. Reports false when nothing is visible
func ClipLine(line string, x, width int) (int, string, bool) {
	if x >= width || line == "" {
		return 0, "", false
	}

	lineWidth := runewidth.StringWidth(line)
	if x+lineWidth <= 0 {
		return 0, "", false
	}
	if x >= 0 && x+lineWidth <= width {
		return x, line, true
	}

	start, startCol := -1, 0
	end := len(line)
	col := x
	for i, r := range line {
		rw := runewidth.RuneWidth(r)
		if col+rw > width {
			end = i
			break
		}
		if start < 0 && col >= 0 {
			start, startCol = i, col
		}
		col += rw
	}

	if start < 0 || start >= end {
		return 0, "", false
	}
	return startCol, line[start:end], true
}
