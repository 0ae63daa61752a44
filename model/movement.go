package model

type Move struct {
	Allowed bool
	Target  Position
	Cell    Cell
}

// TryMove is the single legality rule for players and hazards: the target
// must be in bounds and not a wall.
func TryMove(g *Grid, from Position, d Delta) Move {
	to := from.Add(d)
	if !g.InBounds(to) {
		return Move{Target: to}
	}
	cell := g.At(to)
	return Move{Allowed: cell.Kind != WALL, Target: to, Cell: cell}
}
