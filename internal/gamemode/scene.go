// Package gamemode holds the screens of the game: time selection,
// instructions and the kitchen itself. Each screen is a Scene; the root
// Game routes Update and Draw to the current one.
package gamemode

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene is one screen of the game.
type Scene interface {
	// Update runs one tick. A non-nil Scene is the screen to switch to.
	Update() (Scene, error)
	Draw(screen *ebiten.Image)
	// OnEnter and OnExit bracket the time a scene owns the input devices.
	OnEnter()
	OnExit()
	Name() string
}

var (
	ColMenuBg  = color.RGBA{0x1e, 0x1b, 0x4b, 0xff}
	ColCard    = color.NRGBA{0xff, 0xff, 0xff, 0x1a}
	ColText    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColSubtext = color.RGBA{0xbf, 0xdb, 0xfe, 0xff}
	ColHilite  = color.RGBA{0xfd, 0xe0, 0x47, 0xff}
	ColGo      = color.RGBA{0x10, 0xb9, 0x81, 0xff}
	ColBack    = color.RGBA{0x4b, 0x55, 0x63, 0xff}
	ColAction  = color.RGBA{0x63, 0x66, 0xf1, 0xff}
)

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.LineSpacing = face.Size * 1.4
	text.Draw(dst, s, face, op)
}

// tapped reports a fresh left click or touch this tick, in screen units.
func tapped() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}

type button struct {
	X, Y, W, H float32
	Label      string
	Fill       color.Color
}

func (b button) hit(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

func (b button) draw(screen *ebiten.Image, face *text.GoTextFace) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, b.Fill, true)
	ty := float64(b.Y) + (float64(b.H)-face.Size)/2
	drawText(screen, b.Label, face, float64(b.X+b.W/2), ty, ColText, text.AlignCenter)
}
