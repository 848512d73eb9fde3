package render

import (
	"fmt"

	"github.com/lixenwraith/horse/sprite"
)

// Renderer redraws the parade onto a Surface
type Renderer struct {
	spans []Span // Reused across frames
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{
		spans: make([]Span, 0, 64),
	}
}

// RenderFrame executes the render pipeline: clear, draw every visible span in frame order, show
func (r *Renderer) RenderFrame(s Surface, width, height int, frames []*sprite.Frame) error {
	r.spans = AppendLayout(r.spans[:0], width, height, frames)

	if err := s.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	for _, span := range r.spans {
		if err := s.DrawString(span.X, span.Y, span.Text); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}
	if err := s.Show(); err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return nil
}

// Spans returns the spans drawn by the last RenderFrame
func (r *Renderer) Spans() []Span {
	return r.spans
}
