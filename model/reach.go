package model

import "github.com/zyedidia/generic/mapset"

// Reachable collects every position a walker starting at from can visit
// using TryMove steps. The start itself is always included.
func Reachable(g *Grid, from Position) mapset.Set[Position] {
	visited := mapset.New[Position]()
	if !g.InBounds(from) {
		return visited
	}
	queue := []Position{from}
	visited.Put(from)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			m := TryMove(g, current, d)
			if m.Allowed && !visited.Has(m.Target) {
				visited.Put(m.Target)
				queue = append(queue, m.Target)
			}
		}
	}
	return visited
}

// ReachableTokens counts tokens a walker starting at from can collect.
func ReachableTokens(g *Grid, from Position) int {
	n := 0
	Reachable(g, from).Each(func(p Position) {
		if g.At(p).Kind == TOKEN {
			n++
		}
	})
	return n
}
