// @lixen: #focus{parade[loop,lifecycle]}
package engine

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/horse/catalog"
	"github.com/lixenwraith/horse/render"
	"github.com/lixenwraith/horse/sprite"
	"github.com/lixenwraith/horse/status"
)

// Display is a terminal the stage can draw on and the watcher can listen to
type Display interface {
	render.Surface
	EventSource

	// Init enters raw mode and the alternate screen
	Init() error

	// Fini restores the terminal; idempotent
	Fini()
}

// Stage owns the herd and runs the render loop on the calling goroutine
type Stage struct {
	surface  render.Surface
	herd     *sprite.Herd
	renderer *render.Renderer
	cfg      Config
	logger   *log.Logger

	ticks uint64

	// Cached metric pointers
	stats       *status.Registry
	statTicks   *atomic.Int64
	statSpawned *atomic.Int64
	statRetired *atomic.Int64
	statLive    *atomic.Int64
	statLastArt *status.AtomicString
}

// NewStage creates a stage spawning artworks from picker onto surface
func NewStage(surface render.Surface, picker *catalog.Picker, cfg Config, logger *log.Logger) *Stage {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	stats := status.NewRegistry()
	return &Stage{
		surface:     surface,
		herd:        sprite.NewHerd(picker, cfg.Spacing, cfg.LookaheadPercent),
		renderer:    render.NewRenderer(),
		cfg:         cfg,
		logger:      logger,
		stats:       stats,
		statTicks:   stats.Ints.Get("parade.ticks"),
		statSpawned: stats.Ints.Get("parade.spawned"),
		statRetired: stats.Ints.Get("parade.retired"),
		statLive:    stats.Ints.Get("parade.live"),
		statLastArt: stats.Strings.Get("parade.last_art"),
	}
}

// Herd exposes the live frames
func (s *Stage) Herd() *sprite.Herd {
	return s.herd
}

// Stats returns the stage counters; safe to read from any goroutine
func (s *Stage) Stats() *status.Registry {
	return s.stats
}

// Ticks returns the number of completed ticks
func (s *Stage) Ticks() uint64 {
	return s.ticks
}

// Tick runs one frame: query size, spawn, draw, then move and retire
// Spawning and clipping share one size query
func (s *Stage) Tick() error {
	width, height, err := s.surface.Size()
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}

	if n := s.herd.Fill(width); n > 0 {
		last := s.herd.Last()
		s.statSpawned.Add(int64(n))
		s.statLastArt.Store(last.Art.Name)
		s.logger.Debug("spawn", "art", last.Art.Name, "x", last.X, "live", s.herd.Len())
	}

	if err := s.renderer.RenderFrame(s.surface, width, height, s.herd.Frames()); err != nil {
		return err
	}

	s.herd.Advance(s.cfg.ScrollSpeed)
	if n := s.herd.Retire(); n > 0 {
		s.statRetired.Add(int64(n))
		s.logger.Debug("retire", "count", n, "live", s.herd.Len())
	}

	s.ticks++
	s.statTicks.Store(int64(s.ticks))
	s.statLive.Store(int64(s.herd.Len()))
	return nil
}

// Run ticks at the configured frame interval until quit is closed or a tick fails
// A closed quit returns nil; a tick error is returned wrapped with the tick number
func (s *Stage) Run(quit <-chan struct{}) error {
	ticker := time.NewTicker(s.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		// Quit takes priority over a ready tick
		select {
		case <-quit:
			return nil
		default:
		}

		if err := s.Tick(); err != nil {
			return fmt.Errorf("tick %d: %w", s.ticks, err)
		}

		select {
		case <-quit:
			return nil
		case <-ticker.C:
		}
	}
}
