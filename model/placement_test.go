package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSuitable(t *testing.T) {
	g := gridFrom(t,
		".......",
		".#.....",
		".......",
		".....3.",
		".......",
	)
	assert.False(t, IsSuitable(g, Position{1, 1}), "wall itself")
	assert.False(t, IsSuitable(g, Position{0, 0}), "diagonal to wall")
	assert.False(t, IsSuitable(g, Position{2, 2}), "diagonal to wall")
	assert.False(t, IsSuitable(g, Position{5, 3}), "token itself")
	assert.False(t, IsSuitable(g, Position{4, 4}), "next to token")
	assert.True(t, IsSuitable(g, Position{3, 1}))
	assert.True(t, IsSuitable(g, Position{0, 4}), "corner with out of bounds neighbors")
	assert.False(t, IsSuitable(g, Position{-1, 0}))
	assert.False(t, IsSuitable(g, Position{7, 0}))
}

func TestPlaceTokensKeepsTokensIsolated(t *testing.T) {
	tc, err := NewTokenCatalog(tenKinds())
	require.NoError(t, err)
	base := Rasterize(sample, PAD_OPEN_SPACES)

	for seed := int64(1); seed <= 20; seed++ {
		g := PlaceTokens(base, tc, 0.5, seeded(seed))
		for c := 0; c < g.Cols; c++ {
			for r := 0; r < g.Rows; r++ {
				p := Position{c, r}
				if g.At(p).Kind != TOKEN {
					continue
				}
				assert.Equal(t, EMPTY, base.At(p).Kind)
				g.Set(p, EmptyCell())
				assert.True(t, IsSuitable(g, p), "seed %d token at %v", seed, p)
				g.Set(p, base.At(p))
			}
		}
	}
}

func TestPlaceTokensDoesNotTouchSource(t *testing.T) {
	tc, err := NewTokenCatalog(tenKinds())
	require.NoError(t, err)
	base := Rasterize(sample, PAD_SOLID)
	before := base.Clone()

	g := PlaceTokens(base, tc, 1, seeded(3))
	assert.Equal(t, before, base)
	assert.Positive(t, g.CountTokens())
}

func TestPlaceTokensDensityBounds(t *testing.T) {
	tc, err := NewTokenCatalog(tenKinds())
	require.NoError(t, err)
	open := NewEmptyGrid(9, 9)

	assert.Zero(t, PlaceTokens(open, tc, 0, seeded(1)).CountTokens())

	// with every draw accepted, row-major greedy placement fills every other cell
	full := PlaceTokens(open, tc, 1, seeded(1))
	assert.Equal(t, 25, full.CountTokens())
	for _, p := range []Position{{0, 0}, {2, 0}, {8, 8}, {4, 6}} {
		assert.Equal(t, TOKEN, full.At(p).Kind, "%v", p)
	}
}

func TestPlaceTokensUsesCatalogPoints(t *testing.T) {
	tc, err := NewTokenCatalog([]TokenKind{{Name: "UX", Points: 10}, {Name: "SEO", Points: 1}})
	require.NoError(t, err)
	g := PlaceTokens(NewEmptyGrid(3, 3), tc, 1, seeded(9))
	require.Equal(t, 4, g.CountTokens())
	cell := g.At(Position{0, 0})
	k, ok := tc.Lookup(cell.Token)
	require.True(t, ok)
	assert.Equal(t, k.Points, cell.Points)
}

func TestPlaceHazardsOnSuitableCells(t *testing.T) {
	hc, err := NewHazardCatalog([]HazardKind{{Name: "🐛"}, {Name: "404"}})
	require.NoError(t, err)
	g := Rasterize(sample, PAD_OPEN_SPACES)

	hazards, err := PlaceHazards(g, hc, 20, 0, seeded(11))
	require.NoError(t, err)
	require.Len(t, hazards, 20)
	for _, h := range hazards {
		assert.True(t, IsSuitable(g, h.Pos), "%v", h.Pos)
		_, ok := hc.Lookup(h.Kind)
		assert.True(t, ok)
	}
}

func TestPlaceHazardsExhausted(t *testing.T) {
	g := gridFrom(t,
		"###",
		"#.#",
		"###",
	)
	assert.Empty(t, SuitableCells(g))

	_, err := PlaceHazards(g, &HazardCatalog{}, 1, 50, seeded(1))
	assert.ErrorIs(t, err, ErrPlacementExhausted)

	none, err := PlaceHazards(g, &HazardCatalog{}, 0, 50, seeded(1))
	assert.NoError(t, err)
	assert.Empty(t, none)
}
