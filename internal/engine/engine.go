// Package engine is the game loop core: state, spawning, physics,
// recipe tracking and input intents. It does no drawing and reads no
// devices; hosts feed it input and paint its State once per frame.
package engine

import (
	"log"
	"math/rand/v2"
	"time"
)

type Engine struct {
	cfg     Config
	recipes []Recipe
	rng     *rand.Rand
	state   *State
}

// New validates cfg and starts a fresh round.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	e := &Engine{
		cfg:     cfg,
		recipes: Recipes(float64(cfg.RoundSeconds)),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	e.state = newState(e.recipes[0])
	log.Printf("round started: %ds per recipe, %d recipes", cfg.RoundSeconds, len(e.recipes))
	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

// State is the live state. Callers may read it freely between steps;
// mutations should go through the input methods.
func (e *Engine) State() *State { return e.state }

func (e *Engine) Recipes() []Recipe { return e.recipes }

// Recipe is the recipe currently being cooked. After the last one is
// completed it keeps returning the last recipe.
func (e *Engine) Recipe() Recipe {
	i := e.state.RecipeIndex
	if i >= len(e.recipes) {
		i = len(e.recipes) - 1
	}
	return e.recipes[i]
}

// Step advances the game by one frame. It is a no-op once the game is over.
func (e *Engine) Step() {
	s := e.state
	if s.Over() {
		return
	}
	s.Frame++

	moveChef(s)
	e.collide(s)
	e.track(s)

	if s.Over() {
		log.Printf("game over after %d frames: %s, score %d, recipe %d/%d",
			s.Frame, s.Reason, s.Score, s.RecipeIndex, len(e.recipes))
		return
	}
	e.spawn(s)
}

// Restart replaces a finished game with a fresh one. It reports false and
// does nothing while a game is still running.
func (e *Engine) Restart() bool {
	if !e.state.Over() {
		return false
	}
	e.state = newState(e.recipes[0])
	log.Printf("round restarted")
	return true
}

func moveChef(s *State) {
	if s.Input.Left {
		s.Chef.X -= ChefSpeed
	}
	if s.Input.Right {
		s.Chef.X += ChefSpeed
	}
	s.Chef.X = clampChefX(s.Chef.X)

	if s.Chef.PoseTimer > 0 {
		s.Chef.PoseTimer--
	} else {
		s.Chef.Pose = Idle
	}
}

func clampChefX(x float64) float64 {
	return max(0, min(x, CanvasWidth-ChefWidth))
}
