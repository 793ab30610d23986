package engine

import (
	"image/color"
	"testing"
)

func TestKindClasses(t *testing.T) {
	tests := []struct {
		kind                        Kind
		name                        string
		points                      int
		ingredient, hazard, powerUp bool
	}{
		{Tomato, "tomato", 10, true, false, false},
		{Lettuce, "lettuce", 10, true, false, false},
		{Cheese, "cheese", 10, true, false, false},
		{Bomb, "bomb", -20, false, true, false},
		{Rotten, "rotten", -10, false, true, false},
		{Magnet, "magnet", 0, false, false, true},
		{Clock, "clock", 0, false, false, true},
	}
	for _, tt := range tests {
		k := tt.kind
		if k.String() != tt.name || k.Points() != tt.points {
			t.Errorf("%v: got %s/%d, want %s/%d", int(k), k, k.Points(), tt.name, tt.points)
		}
		if k.IsIngredient() != tt.ingredient || k.IsHazard() != tt.hazard || k.IsPowerUp() != tt.powerUp {
			t.Errorf("%s: ingredient=%v hazard=%v powerUp=%v", k, k.IsIngredient(), k.IsHazard(), k.IsPowerUp())
		}
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("unknown kind string = %q", s)
	}
}

func TestKindColor(t *testing.T) {
	if got, want := Tomato.RGBA(), (color.RGBA{0xff, 0x6b, 0x6b, 0xff}); got != want {
		t.Fatalf("tomato colour = %v, want %v", got, want)
	}
	if got, want := Rotten.RGBA(), (color.RGBA{0x8b, 0x45, 0x13, 0xff}); got != want {
		t.Fatalf("rotten colour = %v, want %v", got, want)
	}
}

func TestCountsCovers(t *testing.T) {
	need := Counts{Tomato: 3, Lettuce: 3, Cheese: 3}
	if (Counts{3, 3, 2}).Covers(need) {
		t.Fatal("short on cheese but covered")
	}
	if !(Counts{3, 3, 3}).Covers(need) {
		t.Fatal("exact counts not covered")
	}
	if got := (Counts{1, 2, 3}).Get(Bomb); got != 0 {
		t.Fatalf("bomb count = %d, want 0", got)
	}
}

func TestRecipes(t *testing.T) {
	rs := Recipes(60)
	if len(rs) != 5 {
		t.Fatalf("%d recipes, want 5", len(rs))
	}
	for i, r := range rs {
		want := i + 3
		if r.Ingredients != (Counts{want, want, want}) || r.Seconds != 60 {
			t.Fatalf("recipe %d %q = %v/%v", i, r.Name, r.Ingredients, r.Seconds)
		}
	}
	if rs[0].Name != "Basic Salad" || rs[4].Name != "Chef's Choice" {
		t.Fatalf("recipe names = %q..%q", rs[0].Name, rs[4].Name)
	}
}

func TestOptionIndex(t *testing.T) {
	if i := OptionIndex(60); i != 1 {
		t.Fatalf("OptionIndex(60) = %d, want 1", i)
	}
	if i := OptionIndex(45); i != -1 {
		t.Fatalf("OptionIndex(45) = %d, want -1", i)
	}
}
