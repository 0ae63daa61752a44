package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryMoveBlockedByWallsAndEdges(t *testing.T) {
	grids := []*Grid{
		gridFrom(t, "#"),
		gridFrom(t, ".#", "#."),
		gridFrom(t, "###", "#.#", "###"),
		Rasterize(sample, PAD_SOLID),
	}
	for _, g := range grids {
		before := g.Clone()
		for c := 0; c < g.Cols; c++ {
			for r := 0; r < g.Rows; r++ {
				from := Position{c, r}
				for _, d := range Directions {
					m := TryMove(g, from, d)
					to := from.Add(d)
					if !g.InBounds(to) || g.At(to).Kind == WALL {
						assert.False(t, m.Allowed, "%v -> %v", from, to)
					} else {
						assert.True(t, m.Allowed, "%v -> %v", from, to)
					}
					assert.Equal(t, to, m.Target)
				}
			}
		}
		assert.Equal(t, before, g)
	}
}

func TestTryMoveClassifiesTarget(t *testing.T) {
	g := gridFrom(t, ".5#")

	m := TryMove(g, Position{0, 0}, Delta{DCol: 1})
	assert.True(t, m.Allowed)
	assert.Equal(t, TOKEN, m.Cell.Kind)
	assert.Equal(t, 5, m.Cell.Points)

	m = TryMove(g, Position{1, 0}, Delta{DCol: -1})
	assert.True(t, m.Allowed)
	assert.Equal(t, EMPTY, m.Cell.Kind)

	m = TryMove(g, Position{1, 0}, Delta{DCol: 1})
	assert.False(t, m.Allowed)
	assert.Equal(t, WALL, m.Cell.Kind)
}

func TestDirections(t *testing.T) {
	assert.Equal(t, Delta{DCol: 1}, RIGHT.Delta())
	assert.Equal(t, Delta{DRow: 1}, DOWN.Delta())
	assert.Equal(t, Delta{DCol: -1}, LEFT.Delta())
	assert.Equal(t, Delta{DRow: -1}, UP.Delta())
	assert.Equal(t, "MOVE_UP", MOVE_UP.Name())
}
