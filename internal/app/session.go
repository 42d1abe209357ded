package app

import (
	"time"

	"lifegrid/internal/controller"
	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/ui"
)

// Session wires the engine to its controller for one process lifetime.
type Session struct {
	Life *life.Life
	Ctrl *controller.Controller
}

// NewSession builds the reference-sized board, paused, with its gate clock
// starting at now.
func NewSession(cfg *Config, now time.Time) *Session {
	l := life.New(core.GridWidth, core.GridHeight)
	if cfg.Seed != 0 {
		l.Seed(cfg.Seed)
	}
	l.SetWorkers(cfg.Workers)
	return &Session{
		Life: l,
		Ctrl: controller.New(l, core.CellSize, core.GenerationInterval, now),
	}
}

// Status reports the state shown on the HUD.
func (s *Session) Status() ui.Status {
	return ui.Status{
		Paused:     s.Ctrl.Paused(),
		Generation: s.Life.Generation(),
		Population: s.Life.Population(),
	}
}

// ScreenSize returns the window size in pixels.
func (s *Session) ScreenSize() (int, int) {
	size := s.Life.Size()
	return size.W * core.CellSize, size.H * core.CellSize
}
