package engine

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies what a falling object is.
type Kind int

const (
	Tomato Kind = iota
	Lettuce
	Cheese
	Bomb
	Rotten
	Magnet
	Clock

	NumKinds
)

// NumIngredients is the number of leading kinds that count toward recipes.
const NumIngredients = 3

type kindInfo struct {
	name    string
	hex     string
	points  int
	powerUp bool
}

var kindTable = [NumKinds]kindInfo{
	Tomato:  {name: "tomato", hex: "#FF6B6B", points: 10},
	Lettuce: {name: "lettuce", hex: "#4ECDC4", points: 10},
	Cheese:  {name: "cheese", hex: "#FFE66D", points: 10},
	Bomb:    {name: "bomb", hex: "#FF4757", points: -20},
	Rotten:  {name: "rotten", hex: "#8B4513", points: -10},
	Magnet:  {name: "magnet", hex: "#A8E6CF", powerUp: true},
	Clock:   {name: "clock", hex: "#DDA0DD", powerUp: true},
}

var kindColors [NumKinds]colorful.Color

func init() {
	for k, info := range kindTable {
		c, err := colorful.Hex(info.hex)
		if err != nil {
			panic(fmt.Sprintf("engine: bad colour %q for %s: %v", info.hex, info.name, err))
		}
		kindColors[k] = c
	}
}

func (k Kind) valid() bool { return k >= 0 && k < NumKinds }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTable[k].name
}

// Points is the score credit for ingredients, or the health change for hazards.
func (k Kind) Points() int {
	if !k.valid() {
		return 0
	}
	return kindTable[k].points
}

func (k Kind) IsIngredient() bool { return k >= 0 && k < NumIngredients }

func (k Kind) IsPowerUp() bool { return k.valid() && kindTable[k].powerUp }

func (k Kind) IsHazard() bool { return k.valid() && !k.IsIngredient() && !k.IsPowerUp() }

// Color is the kind's signature colour, used by the HUD and by hosts that
// can't draw the detailed icons.
func (k Kind) Color() colorful.Color {
	if !k.valid() {
		return colorful.Color{}
	}
	return kindColors[k]
}

// RGBA is Color as an opaque color.RGBA.
func (k Kind) RGBA() color.RGBA {
	r, g, b := k.Color().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Counts holds one number per ingredient kind, indexed by Kind.
type Counts [NumIngredients]int

// Get returns the count for k, or 0 for non-ingredients.
func (c Counts) Get(k Kind) int {
	if !k.IsIngredient() {
		return 0
	}
	return c[k]
}

// Covers reports whether c meets every requirement in need.
func (c Counts) Covers(need Counts) bool {
	for i := range need {
		if c[i] < need[i] {
			return false
		}
	}
	return true
}
