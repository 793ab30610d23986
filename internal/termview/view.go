// Package termview runs the kitchen on a terminal. The 800x600 canvas is
// squeezed onto whatever cell grid the terminal has.
package termview

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"pixelchef/internal/engine"
)

// Terminals send no key-up, so a held arrow is a hold that lapses this many
// frames after the last repeat.
const keyHoldFrames = 18

var glyphs = [engine.NumKinds]rune{
	engine.Tomato:  'o',
	engine.Lettuce: '@',
	engine.Cheese:  'A',
	engine.Bomb:    '*',
	engine.Rotten:  '%',
	engine.Magnet:  'U',
	engine.Clock:   '+',
}

var (
	sky      = mustHex("#87CEEB").BlendLab(colorful.Color{}, 0.65)
	chefCoat = mustHex("#FFFFFF")
	chefSkin = mustHex("#FFDBAC")
	hudBg    = colorful.Color{}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func tc(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

type View struct {
	screen tcell.Screen
	eng    *engine.Engine

	cols, rows int

	holdLeft, holdRight int
	dragging            bool
}

func New(screen tcell.Screen, eng *engine.Engine) *View {
	v := &View{screen: screen, eng: eng}
	v.cols, v.rows = screen.Size()
	return v
}

// cellToWorld maps the centre of a cell onto the canvas.
func (v *View) cellToWorld(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * engine.CanvasWidth / float64(max(v.cols, 1))
	y := (float64(row) + 0.5) * engine.CanvasHeight / float64(max(v.rows, 1))
	return x, y
}

func (v *View) worldToCell(x, y float64) (int, int) {
	col := int(math.Floor(x * float64(v.cols) / engine.CanvasWidth))
	row := int(math.Floor(y * float64(v.rows) / engine.CanvasHeight))
	return col, row
}

// Handle applies one terminal event. It reports true when the player asked
// to quit.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.cols, v.rows = v.screen.Size()
		v.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			v.holdLeft, v.holdRight = keyHoldFrames, 0
		case tcell.KeyRight:
			v.holdLeft, v.holdRight = 0, keyHoldFrames
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'r', 'R':
				if v.eng.Restart() {
					v.release()
				}
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := v.cellToWorld(col, row)
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !v.dragging:
			v.dragging = v.eng.PointerDown(x, y)
		case pressed:
			v.eng.PointerMove(x)
		case v.dragging:
			v.eng.PointerUp()
			v.dragging = false
		}
	}
	return false
}

func (v *View) release() {
	v.holdLeft, v.holdRight = 0, 0
	v.dragging = false
	v.eng.Release()
}

// Tick feeds the current holds into the engine and steps one frame.
func (v *View) Tick() {
	v.eng.Hold(v.holdLeft > 0, v.holdRight > 0)
	if v.holdLeft > 0 {
		v.holdLeft--
	}
	if v.holdRight > 0 {
		v.holdRight--
	}
	v.eng.Step()
}

// Run drives the view at 60 ticks per second until quit is requested or
// events is closed. Events are applied between frames, never during one.
func (v *View) Run(events <-chan tcell.Event) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	defer v.release()

	for {
		select {
		case ev, ok := <-events:
			if !ok || v.Handle(ev) {
				return
			}
		case <-ticker.C:
			v.Tick()
			v.Draw()
			v.screen.Show()
		}
	}
}

// Draw paints the current state into the screen buffer. The caller shows it.
func (v *View) Draw() {
	s := v.eng.State()
	bg := tcell.StyleDefault.Background(tc(sky))
	v.screen.Fill(' ', bg)

	if s.Over() {
		v.drawGameOver(s)
		return
	}

	v.drawChef(s.Chef, bg)
	for _, o := range s.Objects {
		col, row := v.worldToCell(o.Center())
		if row < 0 {
			continue
		}
		v.screen.SetContent(col, row, glyphs[o.Kind], nil, bg.Foreground(tc(o.Kind.Color())).Bold(true))
	}
	v.drawHUD(s)
}

func (v *View) drawChef(c engine.Chef, bg tcell.Style) {
	c0, r0 := v.worldToCell(c.X, c.Y)
	c1, r1 := v.worldToCell(c.X+engine.ChefWidth-1, c.Y+engine.ChefHeight-1)
	body := bg.Foreground(tc(chefCoat))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			v.screen.SetContent(col, row, '█', nil, body)
		}
	}
	arms := bg.Foreground(tc(chefSkin))
	if c.Pose == engine.Catching {
		v.screen.SetContent(c0-1, r0, '\\', nil, arms)
		v.screen.SetContent(c1+1, r0, '/', nil, arms)
	}
	mid := (c0 + c1) / 2
	v.screen.SetContent(mid, r0-1, '▄', nil, bg.Foreground(tc(chefCoat)))
}

func (v *View) drawHUD(s *engine.State) {
	r := v.eng.Recipe()
	style := tcell.StyleDefault.Background(tc(hudBg)).Foreground(tcell.ColorWhite)

	line1 := fmt.Sprintf(" Score %d  Health %d  Time %ds  %s (%d/%d)",
		s.Score, s.Health, int(math.Ceil(s.TimeLeft)), r.Name, s.RecipeIndex+1, len(v.eng.Recipes()))
	line2 := " "
	for k := engine.Kind(0); k < engine.NumIngredients; k++ {
		line2 += fmt.Sprintf("%c %s %d/%d  ", glyphs[k], k, s.Progress.Get(k), r.Ingredients[k])
	}
	if s.PowerUps.Magnet > 0 {
		line2 += fmt.Sprintf("Magnet %ds  ", (s.PowerUps.Magnet+59)/60)
	}
	if s.PowerUps.SlowMotion > 0 {
		line2 += fmt.Sprintf("Slow-Mo %ds", (s.PowerUps.SlowMotion+59)/60)
	}

	v.fillRow(0, style)
	v.fillRow(1, style)
	v.put(0, 0, line1, style)
	v.put(0, 1, line2, style)
}

func (v *View) drawGameOver(s *engine.State) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	v.screen.Fill(' ', style)
	mid := v.rows / 2
	v.center(mid-2, "GAME OVER", style.Bold(true))
	v.center(mid, fmt.Sprintf("Final Score: %d", s.Score), style)
	v.center(mid+1, s.Reason.String(), style.Dim(true))
	v.center(mid+3, "Press R to restart, Q to quit", style)
}

func (v *View) fillRow(row int, style tcell.Style) {
	for col := 0; col < v.cols; col++ {
		v.screen.SetContent(col, row, ' ', nil, style)
	}
}

func (v *View) put(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (v *View) center(row int, s string, style tcell.Style) {
	v.put((v.cols-len([]rune(s)))/2, row, s, style)
}
