package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlueprintFromLines(t *testing.T) {
	cfg := BlueprintConfig{
		Name:        "sample",
		Lines:       sample,
		Padding:     PAD_OPEN_SPACES,
		Tokens:      tenKinds(),
		Hazards:     []HazardKind{{Name: "🐛"}},
		HazardCount: 3,
	}
	a, err := NewBlueprint(cfg, seeded(4))
	require.NoError(t, err)
	b, err := NewBlueprint(cfg, seeded(4))
	require.NoError(t, err)

	assert.Equal(t, a.Grid, b.Grid, "same seed, same maze")
	assert.Equal(t, DefaultStart, a.Start)
	assert.Equal(t, 3, a.HazardCount)
	assert.Equal(t, DefaultPlacementAttempts(a.Grid), a.MaxPlacementAttempts)

	walls := Rasterize(sample, PAD_OPEN_SPACES)
	for c := 0; c < walls.Cols; c++ {
		for r := 0; r < walls.Rows; r++ {
			p := Position{c, r}
			if walls.At(p).Kind == WALL {
				assert.Equal(t, walls.At(p), a.Grid.At(p))
			}
		}
	}
}

func TestNewBlueprintCopiesGivenGrid(t *testing.T) {
	g := gridFrom(t, "..", ".3")
	bp, err := NewBlueprint(BlueprintConfig{Name: "g", Grid: g, Tokens: []TokenKind{{Name: "t3", Points: 3}}}, seeded(1))
	require.NoError(t, err)
	g.Set(Position{1, 1}, EmptyCell())
	assert.Equal(t, TOKEN, bp.Grid.At(Position{1, 1}).Kind)
	assert.Equal(t, 1, bp.ReachableTokens())
}

func TestNewBlueprintValidation(t *testing.T) {
	tokens := []TokenKind{{Name: "t1", Points: 1}}
	far := Position{10, 10}
	for name, cfg := range map[string]BlueprintConfig{
		"start out of bounds":  {Grid: NewEmptyGrid(3, 3), Tokens: tokens, Start: &far},
		"hazard out of bounds": {Grid: NewEmptyGrid(3, 3), Tokens: tokens, HazardStarts: []Position{{3, 0}}},
		"negative hazards":     {Grid: NewEmptyGrid(3, 3), Tokens: tokens, HazardCount: -1},
		"density":              {Grid: NewEmptyGrid(3, 3), Tokens: tokens, Density: 1.5},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewBlueprint(cfg, seeded(1))
			assert.ErrorIs(t, err, ErrInvalidBlueprint)
		})
	}

	_, err := NewBlueprint(BlueprintConfig{Grid: NewEmptyGrid(3, 3)}, seeded(1))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestHazardStartsOverrideCount(t *testing.T) {
	bp, err := NewBlueprint(BlueprintConfig{
		Grid:         NewEmptyGrid(4, 4),
		Tokens:       []TokenKind{{Name: "t1", Points: 1}},
		HazardCount:  10,
		HazardStarts: []Position{{3, 0}, {0, 3}},
	}, seeded(1))
	require.NoError(t, err)
	assert.Equal(t, 2, bp.HazardCount)

	hazards, err := bp.SeedHazards(seeded(2))
	require.NoError(t, err)
	assert.Equal(t, Position{3, 0}, hazards[0].Pos)
	assert.Equal(t, Position{0, 3}, hazards[1].Pos)
}

func TestReachable(t *testing.T) {
	g := gridFrom(t,
		"..#2.",
		"1.#..",
		"###..",
		"9....",
	)
	from := Position{0, 0}
	reach := Reachable(g, from)
	assert.Equal(t, 4, reach.Size())
	assert.True(t, reach.Has(Position{0, 1}))
	assert.False(t, reach.Has(Position{3, 0}))
	assert.Equal(t, 1, ReachableTokens(g, from))
	assert.Equal(t, 2, ReachableTokens(g, Position{4, 3}))
	assert.Zero(t, Reachable(g, Position{-1, 0}).Size())
}
