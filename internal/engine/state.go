package engine

type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game-over"
	}
	return "running"
}

// EndReason says why a round finished.
type EndReason int

const (
	NotEnded EndReason = iota
	HealthDepleted
	TimeUp
	RecipesComplete
)

func (r EndReason) String() string {
	switch r {
	case HealthDepleted:
		return "out of health"
	case TimeUp:
		return "out of time"
	case RecipesComplete:
		return "all recipes complete"
	}
	return "not ended"
}

type Pose int

const (
	Idle Pose = iota
	Catching
)

type Chef struct {
	X, Y      float64
	Pose      Pose
	PoseTimer int
}

// Center of the chef sprite box.
func (c Chef) Center() (float64, float64) {
	return c.X + ChefWidth/2, c.Y + ChefHeight/2
}

type FallingObject struct {
	X, Y float64
	Kind Kind
}

// Center of the object box.
func (o FallingObject) Center() (float64, float64) {
	return o.X + ObjectSize/2, o.Y + ObjectSize/2
}

// PowerUps are frame countdowns; zero means inactive.
type PowerUps struct {
	Magnet     int
	SlowMotion int
}

// Intents are held movement flags set by the input adapter.
type Intents struct {
	Left, Right bool
}

// Drag tracks a pointer (mouse or touch) grabbing the chef.
type Drag struct {
	Active bool
	StartX float64
	LastX  float64
}

// State is everything that changes during a round. A restart replaces it
// with a fresh value rather than mutating it back.
type State struct {
	Chef        Chef
	Objects     []FallingObject
	Score       int
	Health      int
	RecipeIndex int
	Progress    Counts
	TimeLeft    float64
	Phase       Phase
	Reason      EndReason
	PowerUps    PowerUps
	Input       Intents
	Drag        Drag
	Frame       int
}

func newState(first Recipe) *State {
	return &State{
		Chef: Chef{
			X: CanvasWidth/2 - ChefWidth/2,
			Y: CanvasHeight - ChefHeight - ChefFloor,
		},
		Health:   MaxHealth,
		TimeLeft: first.Seconds,
	}
}

func (s *State) Over() bool { return s.Phase == GameOver }

func (s *State) end(r EndReason) {
	if s.Phase == GameOver {
		return
	}
	s.Phase = GameOver
	s.Reason = r
}
