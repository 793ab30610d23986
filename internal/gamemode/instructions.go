package gamemode

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelchef/internal/assets"
	"pixelchef/internal/engine"
)

type card struct {
	title string
	lines []string
}

var cards = [...]card{
	{"Controls", []string{
		"Left / Right arrows to move",
		"Drag the chef with mouse or touch",
		"R to restart after game over",
		"Esc to return to the menu",
	}},
	{"Goal", []string{
		"Catch tomato, lettuce and cheese",
		"Complete 5 recipes",
		"Avoid bombs and rotten food",
		"Don't run out of health or time!",
	}},
	{"Power-ups", []string{
		"Magnet: attracts ingredients",
		"Clock: +10 seconds, slow motion",
	}},
	{"Scoring", []string{
		"Ingredients: +10 points",
		"Recipe bonus: +100 points",
		"Bombs: -20 health",
		"Rotten food: -10 health",
	}},
}

// Instructions explains the rules before a round starts.
type Instructions struct {
	cfg   engine.Config
	back  button
	start button
}

func NewInstructions(cfg engine.Config) *Instructions {
	return &Instructions{
		cfg:   cfg,
		back:  button{X: 230, Y: 520, W: 140, H: 50, Label: "Back", Fill: ColBack},
		start: button{X: 390, Y: 520, W: 180, H: 50, Label: "Let's Begin!", Fill: ColGo},
	}
}

func (s *Instructions) Name() string { return "instructions" }

func (s *Instructions) OnEnter() {}
func (s *Instructions) OnExit()  {}

func (s *Instructions) Update() (Scene, error) {
	goBack := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	begin := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if x, y, ok := tapped(); ok {
		goBack = goBack || s.back.hit(x, y)
		begin = begin || s.start.hit(x, y)
	}

	switch {
	case goBack:
		return NewTimeSelect(s.cfg), nil
	case begin:
		p, err := NewPlay(s.cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, nil
}

func (s *Instructions) Draw(screen *ebiten.Image) {
	screen.Fill(ColMenuBg)

	cx := float64(engine.CanvasWidth / 2)
	drawText(screen, "Get Ready to Cook!", assets.BoldFace(36), cx, 30, ColText, text.AlignCenter)
	drawText(screen, fmt.Sprintf("Time Duration: %d seconds per recipe", s.cfg.RoundSeconds),
		assets.Face(18), cx, 80, ColHilite, text.AlignCenter)

	const w, h = 360, 190
	for i, c := range cards {
		x := float32(30 + (i%2)*(w+20))
		y := float32(120 + (i/2)*(h+10))
		vector.DrawFilledRect(screen, x, y, w, h, ColCard, true)
		drawText(screen, c.title, assets.BoldFace(20), float64(x)+16, float64(y)+12, ColText, text.AlignStart)
		for j, line := range c.lines {
			drawText(screen, "• "+line, assets.Face(15), float64(x)+16, float64(y)+50+float64(j)*28, ColText, text.AlignStart)
		}
	}

	s.back.draw(screen, assets.BoldFace(18))
	s.start.draw(screen, assets.BoldFace(18))
}
