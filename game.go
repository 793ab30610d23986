package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixelchef/internal/engine"
	"pixelchef/internal/gamemode"
)

// Game routes ebiten's callbacks to the current scene.
type Game struct {
	Current gamemode.Scene
	Tick    int
	Debug   bool
}

func NewGame(first gamemode.Scene) *Game {
	first.OnEnter()
	log.Printf("scene: %s", first.Name())
	return &Game{Current: first}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.Tick++

	// Global keys
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.Debug = !g.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return ebiten.Termination
	}

	next, err := g.Current.Update()
	if err != nil {
		return err
	}
	if next != nil {
		log.Printf("scene: %s -> %s", g.Current.Name(), next.Name())
		g.Current.OnExit()
		g.Current = next
		g.Current.OnEnter()
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.Current.Draw(screen)

	if g.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f\nFPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), engine.CanvasWidth-120, engine.CanvasHeight-34)
	}
}

// Layout: always the fixed canvas, ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return engine.CanvasWidth, engine.CanvasHeight
}
