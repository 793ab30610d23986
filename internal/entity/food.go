package entity

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelchef/internal/engine"
)

var (
	colTomato      = color.RGBA{0xff, 0x44, 0x44, 0xff}
	colTomatoShine = color.RGBA{0xff, 0x66, 0x66, 0xff}
	colStem        = color.RGBA{0x22, 0x8b, 0x22, 0xff}
	colLeaf        = color.RGBA{0x32, 0xcd, 0x32, 0xff}
	colLeafCore    = color.RGBA{0x90, 0xee, 0x90, 0xff}
	colCheese      = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colCheeseHole  = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	colBomb        = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	colBombShine   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colFuse        = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	colSpark       = color.RGBA{0xff, 0x45, 0x00, 0xff}
	colRotten      = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	colMold        = color.RGBA{0x55, 0x6b, 0x2f, 0xff}
	colStink       = color.RGBA{0x69, 0x69, 0x69, 0xff}
	colMagnet      = color.RGBA{0xdc, 0x14, 0x3c, 0xff}
	colMagnetTip   = color.RGBA{0x00, 0x00, 0xff, 0xff}
	colField       = color.RGBA{0x41, 0x69, 0xe1, 0xff}
	colClockFace   = color.RGBA{0xf5, 0xf5, 0xdc, 0xff}
	colClockRim    = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	colHands       = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// DrawObject paints a falling object inside its ObjectSize box.
func DrawObject(screen *ebiten.Image, o engine.FallingObject) {
	cx, cy := o.Center()
	x, y := float32(cx), float32(cy)
	top := float32(o.Y)

	switch o.Kind {
	case engine.Tomato:
		vector.DrawFilledCircle(screen, x, y+2, 12, colTomato, true)
		vector.DrawFilledCircle(screen, x-3, y-2, 4, colTomatoShine, true)
		vector.DrawFilledRect(screen, x-2, top+2, 4, 6, colStem, false)
		vector.DrawFilledRect(screen, x-4, top+2, 2, 3, colStem, false)
		vector.DrawFilledRect(screen, x+2, top+2, 2, 3, colStem, false)

	case engine.Lettuce:
		vector.DrawFilledCircle(screen, x, y, 10, colLeaf, true)
		for i := 0; i < 6; i++ {
			a := float64(i) * math.Pi / 3
			lx := x + float32(math.Cos(a)*8)
			ly := y + float32(math.Sin(a)*8)
			vector.DrawFilledCircle(screen, lx, ly, 6, colStem, true)
		}
		vector.DrawFilledCircle(screen, x, y, 6, colLeafCore, true)

	case engine.Cheese:
		drawWedge(screen, x, y-8, 16, 20, colCheese)
		vector.DrawFilledCircle(screen, x-3, y+2, 2, colCheeseHole, true)
		vector.DrawFilledCircle(screen, x+2, y-1, 1.5, colCheeseHole, true)
		vector.DrawFilledCircle(screen, x+4, y+4, 1, colCheeseHole, true)

	case engine.Bomb:
		vector.DrawFilledCircle(screen, x, y+2, 10, colBomb, true)
		vector.DrawFilledCircle(screen, x-3, y-1, 3, colBombShine, true)
		vector.StrokeLine(screen, x+6, y-6, x+10, y-12, 2, colFuse, true)
		vector.DrawFilledCircle(screen, x+10, y-12, 2, colSpark, true)

	case engine.Rotten:
		vector.DrawFilledCircle(screen, x-2, y, 8, colRotten, true)
		vector.DrawFilledCircle(screen, x+3, y+2, 6, colRotten, true)
		vector.DrawFilledCircle(screen, x-4, y-2, 2, colMold, true)
		vector.DrawFilledCircle(screen, x+2, y+4, 1.5, colMold, true)
		for i := float32(0); i < 3; i++ {
			vector.StrokeLine(screen, x+i*3-3, top-2, x+i*3-1, top-8, 1, colStink, true)
		}

	case engine.Magnet:
		vector.DrawFilledRect(screen, x-8, y-6, 4, 12, colMagnet, false)
		vector.DrawFilledRect(screen, x+4, y-6, 4, 12, colMagnet, false)
		vector.DrawFilledRect(screen, x-8, y+6, 16, 4, colMagnet, false)
		vector.DrawFilledRect(screen, x-8, y-10, 4, 4, colMagnetTip, false)
		vector.DrawFilledRect(screen, x+4, y-10, 4, 4, colMagnetTip, false)
		drawArc(screen, x, y-8, 12, 0.2, math.Pi-0.2, colField)

	case engine.Clock:
		vector.DrawFilledCircle(screen, x, y, 10, colClockFace, true)
		vector.StrokeCircle(screen, x, y, 10, 2, colClockRim, true)
		vector.StrokeLine(screen, x, y, x, y-6, 1, colHands, true)
		vector.StrokeLine(screen, x, y, x+4, y, 1, colHands, true)
		vector.DrawFilledCircle(screen, x, y, 1, colHands, true)

	default:
		vector.DrawFilledRect(screen, float32(o.X), top, engine.ObjectSize, engine.ObjectSize, o.Kind.RGBA(), false)
	}
}

// drawWedge fills an upward-pointing triangle with its apex at (cx, top),
// one scanline at a time.
func drawWedge(screen *ebiten.Image, cx, top, h, base float32, clr color.Color) {
	for row := float32(0); row < h; row++ {
		w := base * (row + 1) / h
		vector.DrawFilledRect(screen, cx-w/2, top+row, w, 1, clr, false)
	}
}

// drawArc strokes a circular arc from angle a0 to a1 (radians, y down).
func drawArc(screen *ebiten.Image, cx, cy, r float32, a0, a1 float64, clr color.Color) {
	const segments = 12
	step := (a1 - a0) / segments
	px := cx + r*float32(math.Cos(a0))
	py := cy + r*float32(math.Sin(a0))
	for i := 1; i <= segments; i++ {
		a := a0 + step*float64(i)
		nx := cx + r*float32(math.Cos(a))
		ny := cy + r*float32(math.Sin(a))
		vector.StrokeLine(screen, px, py, nx, ny, 1, clr, true)
		px, py = nx, ny
	}
}
