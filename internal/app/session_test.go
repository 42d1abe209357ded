package app

import (
	"flag"
	"testing"
	"time"

	"lifegrid/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "9", "-tps", "30", "-workers", "2", "-hud=false"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 9 || cfg.TPS != 30 || cfg.Workers != 2 || cfg.HUD {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestSessionDefaults(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession(&Config{Seed: 4, Workers: 2}, start)

	w, h := s.ScreenSize()
	if w != core.GridWidth*core.CellSize || h != core.GridHeight*core.CellSize {
		t.Fatalf("screen = %dx%d", w, h)
	}
	st := s.Status()
	if !st.Paused || st.Generation != 0 || st.Population != 0 {
		t.Fatalf("initial status = %+v", st)
	}
}

func TestSessionFrameFlow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSession(&Config{Seed: 4, Workers: 1}, start)

	s.Ctrl.OnKeyPress(core.KeyRandomize)
	pop := s.Status().Population
	if pop == 0 {
		t.Fatal("randomize produced an empty board")
	}

	s.Ctrl.OnFrameTick(start.Add(time.Second))
	if s.Status().Generation != 0 {
		t.Fatal("paused session advanced")
	}

	s.Ctrl.OnKeyPress(core.KeyTogglePause)
	s.Ctrl.OnFrameTick(start.Add(time.Second))
	s.Ctrl.OnFrameTick(start.Add(time.Second + 50*time.Millisecond))
	if got := s.Status().Generation; got != 1 {
		t.Fatalf("generation = %d, want 1", got)
	}

	s.Ctrl.OnKeyPress(core.KeyClear)
	if st := s.Status(); st.Population != 0 || st.Paused {
		t.Fatalf("after clear status = %+v", st)
	}
}
