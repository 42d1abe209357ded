//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle(core.WindowTitle)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	log.Printf("%dx%d board, %dpx cells, %s per generation, %d workers",
		core.GridWidth, core.GridHeight, core.CellSize, core.GenerationInterval, cfg.Workers)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
