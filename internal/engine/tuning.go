package engine

// Canvas (logical units). Hosts scale this to whatever surface they have.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Chef sprite box.
const (
	ChefWidth  = 60
	ChefHeight = 80
	ChefFloor  = 10 // gap between chef feet and canvas bottom
	ChefSpeed  = 5
)

// Falling objects.
const (
	ObjectSize = 30
	FallSpeed  = 2.0
	SlowFactor = 0.5
)

const (
	// FrameTime is the simulated time per Step. Tied to the 60 TPS tick,
	// not to wall clock.
	FrameTime = 1.0 / 60.0

	CatchFrames   = 30
	PowerUpFrames = 300 // 5s at 60 TPS
	ClockBonus    = 10.0
	RecipeBonus   = 100
	MaxHealth     = 100

	MagnetRadius = 100.0
	MagnetPull   = 0.05

	DragMargin = 20.0

	DefaultSpawnChance = 0.02
)
