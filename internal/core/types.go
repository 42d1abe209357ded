package core

import "time"

// Reference configuration. Engine and controller take these as arguments so
// tests can run on smaller boards.
const (
	GridWidth          = 128
	GridHeight         = 72
	CellSize           = 10
	GenerationInterval = 100 * time.Millisecond
	WindowTitle        = "Game of Life"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Key enumerates the keyboard inputs the controller understands.
type Key int

const (
	KeyOther Key = iota
	KeyTogglePause
	KeyClear
	KeyRandomize
)

// Button enumerates pointer buttons.
type Button int

const (
	ButtonOther Button = iota
	ButtonPrimary
)
