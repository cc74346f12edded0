//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifepaint/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	state, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	game := app.NewGame(state)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
