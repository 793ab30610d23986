package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelchef/internal/engine"
)

var (
	ColCoat  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColSkin  = color.RGBA{0xff, 0xdb, 0xac, 0xff}
	ColEye   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColPants = color.RGBA{0x00, 0x00, 0x80, 0xff}
	ColApron = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
)

// DrawChef paints the chef with its top-left corner at (c.X, c.Y).
// The box is engine.ChefWidth x engine.ChefHeight.
func DrawChef(screen *ebiten.Image, c engine.Chef) {
	x, y := float32(c.X), float32(c.Y)

	// Body
	vector.DrawFilledRect(screen, x+15, y+30, 30, 40, ColCoat, true)

	// Head
	vector.DrawFilledCircle(screen, x+30, y+20, 15, ColSkin, true)

	// Hat
	vector.DrawFilledRect(screen, x+20, y+5, 20, 15, ColCoat, true)
	vector.DrawFilledRect(screen, x+25, y, 10, 10, ColCoat, true)

	// Eyes
	vector.DrawFilledRect(screen, x+25, y+15, 2, 2, ColEye, false)
	vector.DrawFilledRect(screen, x+33, y+15, 2, 2, ColEye, false)

	// Arms: raised while catching, down otherwise
	if c.Pose == engine.Catching {
		vector.DrawFilledRect(screen, x+5, y+25, 15, 8, ColSkin, true)
		vector.DrawFilledRect(screen, x+40, y+25, 15, 8, ColSkin, true)
	} else {
		vector.DrawFilledRect(screen, x+10, y+35, 8, 15, ColSkin, true)
		vector.DrawFilledRect(screen, x+42, y+35, 8, 15, ColSkin, true)
	}

	// Legs
	vector.DrawFilledRect(screen, x+20, y+70, 8, 10, ColPants, true)
	vector.DrawFilledRect(screen, x+32, y+70, 8, 10, ColPants, true)

	// Apron
	vector.DrawFilledRect(screen, x+18, y+40, 24, 25, ColApron, true)
}
