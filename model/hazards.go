package model

// TickHazards moves every hazard one random legal step. Choices are made
// from pre-tick positions; a hazard with no legal step stays put.
func TickHazards(g *Grid, hazards []Hazard, rnd Rand) []Hazard {
	next := make([]Hazard, len(hazards))
	var legal [4]Position
	for i, h := range hazards {
		n := 0
		for _, d := range Directions {
			if m := TryMove(g, h.Pos, d); m.Allowed {
				legal[n] = m.Target
				n++
			}
		}
		next[i] = h
		if n > 0 {
			next[i].Pos = legal[rnd.Intn(n)]
		}
	}
	return next
}
