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

const (
	optionX   = 250
	optionY   = 220
	optionW   = 300
	optionH   = 64
	optionGap = 12
)

// TimeSelect lets the player pick the per-recipe time budget.
type TimeSelect struct {
	cfg    engine.Config
	cursor int
	next   button
}

// NewTimeSelect opens the menu with cfg.RoundSeconds preselected when it
// is one of the offered options.
func NewTimeSelect(cfg engine.Config) *TimeSelect {
	cursor := engine.OptionIndex(cfg.RoundSeconds)
	if cursor < 0 {
		cursor = 0
	}
	bottom := optionY + len(engine.RoundOptions)*(optionH+optionGap)
	return &TimeSelect{
		cfg:    cfg,
		cursor: cursor,
		next:   button{X: optionX, Y: float32(bottom + 10), W: optionW, H: 56, Label: "Continue", Fill: ColAction},
	}
}

func (s *TimeSelect) Name() string { return "time-select" }

func (s *TimeSelect) OnEnter() {}
func (s *TimeSelect) OnExit()  {}

func (s *TimeSelect) Update() (Scene, error) {
	n := len(engine.RoundOptions)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.cursor = (s.cursor + n - 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.cursor = (s.cursor + 1) % n
	}
	if x, y, ok := tapped(); ok {
		for i := range engine.RoundOptions {
			if optionBox(i).hit(x, y) {
				s.cursor = i
			}
		}
		if s.next.hit(x, y) {
			return s.advance(), nil
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return s.advance(), nil
	}
	return nil, nil
}

func (s *TimeSelect) advance() Scene {
	cfg := s.cfg
	cfg.RoundSeconds = engine.RoundOptions[s.cursor].Seconds
	return NewInstructions(cfg)
}

func optionBox(i int) button {
	return button{
		X: optionX,
		Y: float32(optionY + i*(optionH+optionGap)),
		W: optionW,
		H: optionH,
	}
}

func (s *TimeSelect) Draw(screen *ebiten.Image) {
	screen.Fill(ColMenuBg)

	cx := float64(engine.CanvasWidth / 2)
	drawText(screen, "Pixel Chef: Kitchen Rush", assets.BoldFace(40), cx, 60, ColText, text.AlignCenter)
	drawText(screen, "Choose your challenge level", assets.Face(20), cx, 115, ColSubtext, text.AlignCenter)
	drawText(screen, "Select Time Duration", assets.BoldFace(26), cx, 165, ColText, text.AlignCenter)

	for i, o := range engine.RoundOptions {
		b := optionBox(i)
		vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, ColCard, true)
		mark := "( )"
		clr := ColText
		if i == s.cursor {
			vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, ColHilite, true)
			mark = "(•)"
			clr = ColHilite
		}
		drawText(screen, fmt.Sprintf("%s  %s", mark, o.Label), assets.BoldFace(20), float64(b.X)+16, float64(b.Y)+8, clr, text.AlignStart)
		drawText(screen, o.Desc, assets.Face(15), float64(b.X)+52, float64(b.Y)+36, ColSubtext, text.AlignStart)
	}

	s.next.draw(screen, assets.BoldFace(22))
}
