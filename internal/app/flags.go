package app

import (
	"flag"
	"runtime"
)

// Config represents the command-line parameters for the application. Board
// dimensions and cell size are fixed in core and deliberately not exposed.
type Config struct {
	Seed    int64
	TPS     int
	Workers int
	HUD     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 0, TPS: 60, Workers: runtime.NumCPU(), HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize key (0 uses the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status line")
}
