package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"pixelchef/internal/engine"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	eng, err := engine.New(engine.Config{RoundSeconds: 30, Seed: 1})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return New(screen, eng), screen
}

func TestCellMapping(t *testing.T) {
	v, _ := newTestView(t)

	col, row := v.worldToCell(370, 510)
	if col != 37 || row != 20 {
		t.Fatalf("worldToCell(370,510) = %d,%d, want 37,20", col, row)
	}
	x, y := v.cellToWorld(40, 22)
	if x != 405 || y != 562.5 {
		t.Fatalf("cellToWorld(40,22) = %v,%v, want 405,562.5", x, y)
	}
}

func TestArrowHoldLapses(t *testing.T) {
	v, _ := newTestView(t)
	s := v.eng.State()

	v.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	for i := 0; i < keyHoldFrames; i++ {
		v.Tick()
	}
	want := 370.0 - engine.ChefSpeed*keyHoldFrames
	if s.Chef.X != want {
		t.Fatalf("x after hold = %v, want %v", s.Chef.X, want)
	}

	v.Tick()
	if s.Chef.X != want {
		t.Fatalf("x kept moving after hold lapsed: %v", s.Chef.X)
	}
}

func TestOppositeArrowCancelsHold(t *testing.T) {
	v, _ := newTestView(t)
	s := v.eng.State()

	v.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	v.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	v.Tick()
	if s.Chef.X != 375 {
		t.Fatalf("x = %v, want 375", s.Chef.X)
	}
}

func TestMouseDrag(t *testing.T) {
	v, _ := newTestView(t)
	s := v.eng.State()

	// Cell (40,22) is on the chef; each column is 10 world units.
	v.Handle(tcell.NewEventMouse(40, 22, tcell.Button1, tcell.ModNone))
	if !v.dragging {
		t.Fatal("press on chef did not start a drag")
	}
	v.Handle(tcell.NewEventMouse(45, 22, tcell.Button1, tcell.ModNone))
	if s.Chef.X != 420 {
		t.Fatalf("x = %v, want 420", s.Chef.X)
	}
	v.Handle(tcell.NewEventMouse(45, 22, tcell.ButtonNone, tcell.ModNone))
	if v.dragging || s.Drag.Active {
		t.Fatal("release did not end the drag")
	}
}

func TestMouseAwayFromChefIgnored(t *testing.T) {
	v, _ := newTestView(t)
	v.Handle(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(10, 2, tcell.Button1, tcell.ModNone))
	if x := v.eng.State().Chef.X; x != 370 {
		t.Fatalf("x = %v, want 370", x)
	}
}

func TestQuitKeys(t *testing.T) {
	v, _ := newTestView(t)
	tests := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range tests {
		if !v.Handle(ev) {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
	if v.Handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("x quit")
	}
}

func TestRestartOnlyWhenOver(t *testing.T) {
	v, _ := newTestView(t)
	first := v.eng.State()

	v.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.eng.State() != first {
		t.Fatal("restarted a running game")
	}

	first.Health = 0
	v.Tick()
	v.Handle(tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone))
	if v.eng.State() == first || v.eng.State().Over() {
		t.Fatal("R after game over did not restart")
	}
}

func TestDrawPlaysField(t *testing.T) {
	v, screen := newTestView(t)
	s := v.eng.State()
	s.Objects = []engine.FallingObject{{X: 385, Y: 285, Kind: engine.Bomb}}

	v.Draw()

	if r, _, _, _ := screen.GetContent(40, 12); r != '*' {
		t.Fatalf("bomb cell = %q, want '*'", r)
	}
	if r, _, _, _ := screen.GetContent(40, 21); r != '█' {
		t.Fatalf("chef cell = %q, want '█'", r)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != 'S' {
		t.Fatalf("hud starts with %q, want 'S'", r)
	}
}

func TestDrawGameOver(t *testing.T) {
	v, screen := newTestView(t)
	s := v.eng.State()
	s.Health = 0
	v.Tick()

	v.Draw()

	// "GAME OVER" centred on row 10 of 24.
	got := make([]rune, 0, 9)
	for col := 35; col < 44; col++ {
		r, _, _, _ := screen.GetContent(col, 10)
		got = append(got, r)
	}
	if string(got) != "GAME OVER" {
		t.Fatalf("overlay = %q, want GAME OVER", string(got))
	}
}
