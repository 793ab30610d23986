package engine

import "log"

// track runs after collisions: countdowns, recipe completion and the end
// conditions.
func (e *Engine) track(s *State) {
	if s.Health <= 0 {
		s.end(HealthDepleted)
		return
	}

	if s.PowerUps.Magnet > 0 {
		s.PowerUps.Magnet--
	}
	if s.PowerUps.SlowMotion > 0 {
		s.PowerUps.SlowMotion--
	}
	s.TimeLeft -= FrameTime

	if s.Progress.Covers(e.Recipe().Ingredients) {
		s.Score += RecipeBonus
		log.Printf("recipe %q complete, score %d", e.Recipe().Name, s.Score)
		s.RecipeIndex++
		if s.RecipeIndex >= len(e.recipes) {
			s.end(RecipesComplete)
			return
		}
		s.Progress = Counts{}
		s.TimeLeft = e.recipes[s.RecipeIndex].Seconds
	}

	if s.TimeLeft <= 0 {
		s.end(TimeUp)
	}
}
