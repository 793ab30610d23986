package engine

// spawn drops at most one new object per frame.
func (e *Engine) spawn(s *State) {
	if e.rng.Float64() >= e.cfg.SpawnChance {
		return
	}
	s.Objects = append(s.Objects, FallingObject{
		X:    e.rng.Float64() * (CanvasWidth - ObjectSize),
		Y:    -ObjectSize,
		Kind: Kind(e.rng.IntN(int(NumKinds))),
	})
}
