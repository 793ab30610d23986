package engine

import "math"

// collide moves every object, resolves catches and drops whatever was caught
// or fell past the bottom edge. Survivors are compacted in place so removal
// never skips a neighbour.
func (e *Engine) collide(s *State) {
	speed := FallSpeed
	if s.PowerUps.SlowMotion > 0 {
		speed *= SlowFactor
	}
	cx, cy := s.Chef.Center()

	kept := s.Objects[:0]
	for _, o := range s.Objects {
		o.Y += speed

		if s.PowerUps.Magnet > 0 && o.Kind.IsIngredient() {
			ox, oy := o.Center()
			dx, dy := cx-ox, cy-oy
			if math.Hypot(dx, dy) < MagnetRadius {
				o.X += dx * MagnetPull
				o.Y += dy * MagnetPull
			}
		}

		if overlaps(s.Chef, o) {
			s.Chef.Pose = Catching
			s.Chef.PoseTimer = CatchFrames
			e.apply(s, o.Kind)
			continue
		}
		if o.Y > CanvasHeight {
			continue
		}
		kept = append(kept, o)
	}
	clear(s.Objects[len(kept):])
	s.Objects = kept
}

func overlaps(c Chef, o FallingObject) bool {
	return o.X < c.X+ChefWidth &&
		o.X+ObjectSize > c.X &&
		o.Y < c.Y+ChefHeight &&
		o.Y+ObjectSize > c.Y
}

func (e *Engine) apply(s *State, k Kind) {
	switch {
	case k == Magnet:
		s.PowerUps.Magnet = PowerUpFrames
	case k == Clock:
		s.PowerUps.SlowMotion = PowerUpFrames
		s.TimeLeft += ClockBonus
	case k.IsIngredient():
		if s.Progress[k] < e.Recipe().Ingredients[k] {
			s.Progress[k]++
			s.Score += k.Points()
		}
	case k.IsHazard():
		s.Health += k.Points()
	}
}
