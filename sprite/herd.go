package sprite

import (
	"github.com/lixenwraith/horse/catalog"
)

// Herd is the ordered sequence of live frames, left to right in creation order
// Owned by the render loop; not safe for concurrent use
type Herd struct {
	frames    []*Frame
	picker    *catalog.Picker
	spacing   int
	lookahead int // Percent of terminal width past the right edge
}

// NewHerd creates an empty herd spawning from picker
func NewHerd(picker *catalog.Picker, spacing, lookaheadPercent int) *Herd {
	return &Herd{
		frames:    make([]*Frame, 0, 8),
		picker:    picker,
		spacing:   spacing,
		lookahead: lookaheadPercent,
	}
}

// Frames returns live frames in creation order
// The slice is only valid until the next Spawn or Retire
func (h *Herd) Frames() []*Frame {
	return h.frames
}

// Len returns the number of live frames
func (h *Herd) Len() int {
	return len(h.frames)
}

// Last returns the rightmost frame, nil when empty
func (h *Herd) Last() *Frame {
	if len(h.frames) == 0 {
		return nil
	}
	return h.frames[len(h.frames)-1]
}

// SpawnThreshold is the right-edge column below which the next frame is spawned
func (h *Herd) SpawnThreshold(width int) int {
	return width + width*h.lookahead/100
}

// NeedsSpawn reports whether a new frame is due: the herd is empty, or the
// rightmost frame ends before the spawn threshold
func (h *Herd) NeedsSpawn(width int) bool {
	last := h.Last()
	if last == nil {
		return true
	}
	return last.RightEdge() < h.SpawnThreshold(width)
}

// Spawn appends a new frame after the rightmost one plus spacing, or at
// column width when the herd is empty. Reports false on an empty catalog
func (h *Herd) Spawn(width int) (*Frame, bool) {
	art, ok := h.picker.Pick()
	if !ok {
		return nil, false
	}

	x := width
	if last := h.Last(); last != nil {
		x = last.RightEdge() + h.spacing
	}

	f := NewFrame(art, x)
	h.frames = append(h.frames, f)
	return f, true
}

// Fill spawns one frame when NeedsSpawn holds and returns the number spawned
func (h *Herd) Fill(width int) int {
	if !h.NeedsSpawn(width) {
		return 0
	}
	if _, ok := h.Spawn(width); !ok {
		return 0
	}
	return 1
}

// Advance moves every frame left by speed columns
func (h *Herd) Advance(speed int) {
	for _, f := range h.frames {
		f.Scroll(-speed)
	}
}

// Retire drops frames fully past the left edge, keeping survivor order
// Returns the number removed
func (h *Herd) Retire() int {
	kept := h.frames[:0]
	for _, f := range h.frames {
		if !f.OffscreenLeft() {
			kept = append(kept, f)
		}
	}

	removed := len(h.frames) - len(kept)
	// Clear tail so retired frames can be collected
	for i := len(kept); i < len(h.frames); i++ {
		h.frames[i] = nil
	}
	h.frames = kept
	return removed
}
