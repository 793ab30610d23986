package gamemode

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixelchef/internal/engine"
)

// controls feeds ebiten's keyboard, mouse and touch state into the engine.
// Only one pointer drags the chef at a time.
type controls struct {
	attached bool

	mouseDrag bool
	touchDrag bool
	touchID   ebiten.TouchID
	touchBuf  []ebiten.TouchID
}

func (c *controls) attach() {
	*c = controls{attached: true, touchBuf: c.touchBuf[:0]}
}

// detach forgets every pointer and clears the engine's held intents.
func (c *controls) detach(e *engine.Engine) {
	c.attached = false
	c.mouseDrag = false
	c.touchDrag = false
	if e != nil {
		e.Release()
	}
}

func (c *controls) poll(e *engine.Engine) {
	if !c.attached {
		return
	}

	e.Hold(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.Restart()
	}

	c.pollMouse(e)
	c.pollTouch(e)
}

func (c *controls) pollMouse(e *engine.Engine) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !c.touchDrag {
		x, y := ebiten.CursorPosition()
		c.mouseDrag = e.PointerDown(float64(x), float64(y))
	}
	if !c.mouseDrag {
		return
	}
	x, _ := ebiten.CursorPosition()
	e.PointerMove(float64(x))
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		e.PointerUp()
		c.mouseDrag = false
	}
}

func (c *controls) pollTouch(e *engine.Engine) {
	if !c.touchDrag && !c.mouseDrag {
		c.touchBuf = inpututil.AppendJustPressedTouchIDs(c.touchBuf[:0])
		for _, id := range c.touchBuf {
			x, y := ebiten.TouchPosition(id)
			if e.PointerDown(float64(x), float64(y)) {
				c.touchDrag = true
				c.touchID = id
				break
			}
		}
	}
	if !c.touchDrag {
		return
	}
	if inpututil.IsTouchJustReleased(c.touchID) {
		e.PointerUp()
		c.touchDrag = false
		return
	}
	x, _ := ebiten.TouchPosition(c.touchID)
	e.PointerMove(float64(x))
}
