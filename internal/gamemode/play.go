package gamemode

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelchef/internal/assets"
	"pixelchef/internal/engine"
	"pixelchef/internal/entity"
)

var (
	ColSky       = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	ColHUD       = color.NRGBA{0x00, 0x00, 0x00, 0xcc}
	ColDim       = color.NRGBA{0x00, 0x00, 0x00, 0xcc}
	ColHealthBg  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	ColHealthBar = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

const hudHeight = 80

// Play is the kitchen: it owns an engine and steps it once per tick.
type Play struct {
	eng *engine.Engine
	ctl controls
}

func NewPlay(cfg engine.Config) (*Play, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("start kitchen: %w", err)
	}
	return &Play{eng: eng}, nil
}

func (p *Play) Name() string { return "play" }

func (p *Play) OnEnter() {
	log.Printf("kitchen open: %ds per recipe", p.eng.Config().RoundSeconds)
	p.ctl.attach()
}

func (p *Play) OnExit() { p.ctl.detach(p.eng) }

func (p *Play) Update() (Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return NewTimeSelect(p.eng.Config()), nil
	}

	p.ctl.poll(p.eng)
	p.eng.Step()
	return nil, nil
}

func (p *Play) Draw(screen *ebiten.Image) {
	screen.Fill(ColSky)
	s := p.eng.State()

	if s.Over() {
		drawGameOver(screen, s)
		return
	}

	entity.DrawChef(screen, s.Chef)
	for _, o := range s.Objects {
		entity.DrawObject(screen, o)
	}
	drawHUD(screen, s, p.eng.Recipe(), len(p.eng.Recipes()))

	ebitenutil.DebugPrintAt(screen, "ESC: menu", 4, engine.CanvasHeight-18)
}

func drawHUD(screen *ebiten.Image, s *engine.State, r engine.Recipe, total int) {
	vector.DrawFilledRect(screen, 0, 0, engine.CanvasWidth, hudHeight, ColHUD, false)

	face := assets.Face(16)
	left := func(str string, x, y float64) {
		drawText(screen, str, face, x, y, ColText, text.AlignStart)
	}

	left(fmt.Sprintf("Score: %d", s.Score), 10, 10)
	left(fmt.Sprintf("Health: %d", s.Health), 10, 32)
	left(fmt.Sprintf("Time: %ds", int(math.Ceil(s.TimeLeft))), 10, 54)

	left(fmt.Sprintf("Recipe: %s (%d/%d)", r.Name, s.RecipeIndex+1, total), 200, 10)
	for i := engine.Kind(0); i < engine.NumIngredients; i++ {
		x := 200 + float64(i)*100
		vector.DrawFilledCircle(screen, float32(x)+6, 41, 6, i.RGBA(), true)
		left(fmt.Sprintf("%d/%d", s.Progress.Get(i), r.Ingredients[i]), x+16, 32)
	}

	if s.PowerUps.Magnet > 0 {
		left(fmt.Sprintf("Magnet: %ds", secondsLeft(s.PowerUps.Magnet)), 500, 32)
	}
	if s.PowerUps.SlowMotion > 0 {
		left(fmt.Sprintf("Slow-Mo: %ds", secondsLeft(s.PowerUps.SlowMotion)), 500, 54)
	}

	drawHealthBar(screen, s.Health)
}

func secondsLeft(frames int) int {
	return (frames + 59) / 60
}

func drawHealthBar(screen *ebiten.Image, health int) {
	const x, y, w, h = engine.CanvasWidth - 210, 10, 200, 20
	vector.DrawFilledRect(screen, x, y, w, h, ColHealthBg, false)
	frac := float32(max(0, health)) / engine.MaxHealth
	if frac > 0 {
		vector.DrawFilledRect(screen, x, y, w*frac, h, ColHealthBar, false)
	}
}

func drawGameOver(screen *ebiten.Image, s *engine.State) {
	vector.DrawFilledRect(screen, 0, 0, engine.CanvasWidth, engine.CanvasHeight, ColDim, false)

	cx, cy := float64(engine.CanvasWidth/2), float64(engine.CanvasHeight/2)
	drawText(screen, "Game Over!", assets.BoldFace(48), cx, cy-110, ColText, text.AlignCenter)

	f := assets.Face(24)
	drawText(screen, fmt.Sprintf("Final Score: %d", s.Score), f, cx, cy-20, ColText, text.AlignCenter)
	drawText(screen, reasonText(s.Reason), f, cx, cy+15, ColSubtext, text.AlignCenter)
	drawText(screen, "Press R to Restart", f, cx, cy+60, ColText, text.AlignCenter)
}

func reasonText(r engine.EndReason) string {
	switch r {
	case engine.HealthDepleted:
		return "The kitchen got the better of you."
	case engine.TimeUp:
		return "Time ran out."
	case engine.RecipesComplete:
		return "Every recipe served!"
	}
	return ""
}
