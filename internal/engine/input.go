package engine

// Input adapter. Hosts translate device events into these calls; the
// resulting flags are consumed by the next Step.

// Hold sets or clears the held left/right intents.
func (e *Engine) Hold(left, right bool) {
	e.state.Input = Intents{Left: left, Right: right}
}

// PointerDown starts a drag when (x, y) is on or near the chef.
func (e *Engine) PointerDown(x, y float64) bool {
	c := e.state.Chef
	near := x >= c.X-DragMargin && x <= c.X+ChefWidth+DragMargin &&
		y >= c.Y-DragMargin && y <= c.Y+ChefHeight+DragMargin
	if !near {
		return false
	}
	e.state.Drag = Drag{Active: true, StartX: x, LastX: x}
	return true
}

// PointerMove shifts the chef by the pointer's horizontal delta while a
// drag is active.
func (e *Engine) PointerMove(x float64) {
	d := &e.state.Drag
	if !d.Active {
		return
	}
	e.state.Chef.X = clampChefX(e.state.Chef.X + x - d.LastX)
	d.LastX = x
}

func (e *Engine) PointerUp() {
	e.state.Drag.Active = false
}

// Release drops every held intent and any drag. Hosts call it when the play
// scene loses input so nothing stays pressed across scenes.
func (e *Engine) Release() {
	e.state.Input = Intents{}
	e.state.Drag = Drag{}
}
