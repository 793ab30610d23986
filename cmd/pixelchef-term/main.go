// Command pixelchef-term plays Pixel Chef in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"pixelchef/internal/engine"
	"pixelchef/internal/termview"
)

func main() {
	cfg := engine.DefaultConfig()
	flag.IntVar(&cfg.RoundSeconds, "time", cfg.RoundSeconds, "seconds per recipe (30, 60 or 90)")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "spawner seed, 0 for a time-based one")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	if engine.OptionIndex(cfg.RoundSeconds) < 0 {
		log.Fatalf("-time must be one of 30, 60 or 90, got %d", cfg.RoundSeconds)
	}

	// The screen owns stdout from here on.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	termview.New(screen, eng).Run(events)
	log.Printf("terminal session ended, score %d", eng.State().Score)
}
