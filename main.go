package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pixelchef/internal/engine"
	"pixelchef/internal/gamemode"
)

const WindowTitle = "Pixel Chef: Kitchen Rush"

func main() {
	cfg := engine.DefaultConfig()
	flag.IntVar(&cfg.RoundSeconds, "time", cfg.RoundSeconds, "seconds per recipe preselected in the menu (30, 60 or 90)")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "spawner seed, 0 for a time-based one")
	scale := flag.Float64("scale", 1, "window scale")
	flag.Parse()

	if engine.OptionIndex(cfg.RoundSeconds) < 0 {
		log.Fatalf("-time must be one of 30, 60 or 90, got %d", cfg.RoundSeconds)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// 1. Window Setup
	ebiten.SetWindowSize(int(engine.CanvasWidth * *scale), int(engine.CanvasHeight * *scale))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Initialize Game
	game := NewGame(gamemode.NewTimeSelect(cfg))

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
