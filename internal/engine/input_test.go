package engine

import "testing"

func TestHoldMovesChef(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()

	e.Hold(true, false)
	e.Step()
	if s.Chef.X != 365 {
		t.Fatalf("x = %v, want 365", s.Chef.X)
	}

	e.Hold(false, true)
	e.Step()
	e.Step()
	if s.Chef.X != 375 {
		t.Fatalf("x = %v, want 375", s.Chef.X)
	}

	e.Hold(false, false)
	e.Step()
	if s.Chef.X != 375 {
		t.Fatalf("x = %v, want 375 with nothing held", s.Chef.X)
	}
}

func TestHoldClampsToCanvas(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()
	s.Chef.X = 2

	e.Hold(true, false)
	e.Step()
	if s.Chef.X != 0 {
		t.Fatalf("x = %v, want 0", s.Chef.X)
	}

	s.Chef.X = CanvasWidth - ChefWidth - 1
	e.Hold(false, true)
	e.Step()
	if s.Chef.X != CanvasWidth-ChefWidth {
		t.Fatalf("x = %v, want %v", s.Chef.X, CanvasWidth-ChefWidth)
	}
}

func TestPointerDrag(t *testing.T) {
	tests := []struct {
		name   string
		downX  float64
		downY  float64
		grab   bool
		moveTo float64
		wantX  float64
	}{
		{"on chef", 400, 550, true, 450, 420},
		{"inside margin", 355, 495, true, 305, 320},
		{"outside margin", 340, 550, false, 400, 370},
		{"above chef", 400, 480, false, 450, 370},
		{"clamped right", 400, 550, true, 900, CanvasWidth - ChefWidth},
		{"clamped left", 400, 550, true, -500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			if got := e.PointerDown(tt.downX, tt.downY); got != tt.grab {
				t.Fatalf("PointerDown = %v, want %v", got, tt.grab)
			}
			e.PointerMove(tt.moveTo)
			if x := e.State().Chef.X; x != tt.wantX {
				t.Fatalf("x = %v, want %v", x, tt.wantX)
			}
		})
	}
}

func TestPointerUpEndsDrag(t *testing.T) {
	e := newTestEngine(t)
	e.PointerDown(400, 550)
	e.PointerMove(410)
	e.PointerUp()
	e.PointerMove(500)
	if x := e.State().Chef.X; x != 380 {
		t.Fatalf("x = %v, want 380", x)
	}
}

func TestReleaseClearsInput(t *testing.T) {
	e := newTestEngine(t)
	e.Hold(true, true)
	e.PointerDown(400, 550)

	e.Release()

	s := e.State()
	if s.Input.Left || s.Input.Right || s.Drag.Active {
		t.Fatalf("input still held after release: %+v %+v", s.Input, s.Drag)
	}
}
