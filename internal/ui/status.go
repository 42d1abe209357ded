package ui

import "fmt"

// Status is the state summarised by the HUD line.
type Status struct {
	Paused     bool
	Generation int
	Population int
}

// StatusSource supplies the HUD with fresh state each frame.
type StatusSource interface {
	Status() Status
}

// String renders the status line.
func (s Status) String() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  [space] pause  [c] clear  [r] random", state, s.Generation, s.Population)
}
