package model

import (
	"errors"
	"fmt"
)

const DefaultDensity = 0.1

var ErrPlacementExhausted = errors.New("placement exhausted")

// IsSuitable reports whether p is empty and isolated: none of its in-bounds
// 8-neighbors holds a wall or a token.
func IsSuitable(g *Grid, p Position) bool {
	if !g.InBounds(p) || g.At(p).Kind != EMPTY {
		return false
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			n := Position{Col: p.Col + dc, Row: p.Row + dr}
			if g.InBounds(n) && g.At(n).Kind != EMPTY {
				return false
			}
		}
	}
	return true
}

// SuitableCells lists every position passing IsSuitable, row-major.
func SuitableCells(g *Grid) []Position {
	var cells []Position
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p := Position{Col: c, Row: r}
			if IsSuitable(g, p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// PlaceTokens returns a copy of g with tokens dropped on suitable cells.
// Cells are visited row-major on the copy, so a token placed earlier
// disqualifies its neighbors.
func PlaceTokens(g *Grid, catalog *TokenCatalog, density float64, rnd Rand) *Grid {
	out := g.Clone()
	for r := 0; r < out.Rows; r++ {
		for c := 0; c < out.Cols; c++ {
			p := Position{Col: c, Row: r}
			if !IsSuitable(out, p) {
				continue
			}
			if rnd.Float64() < density {
				out.Set(p, TokenCell(catalog.Sample(rnd)))
			}
		}
	}
	return out
}

func DefaultPlacementAttempts(g *Grid) int {
	return 100 * g.Cols * g.Rows
}

// PlaceHazards draws count uniform coordinates, retrying each one until it
// lands on a suitable cell. A hazard that needs more than maxAttempts draws
// fails the whole placement with ErrPlacementExhausted.
func PlaceHazards(g *Grid, catalog *HazardCatalog, count, maxAttempts int, rnd Rand) ([]Hazard, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultPlacementAttempts(g)
	}
	hazards := make([]Hazard, 0, count)
	for i := 0; i < count; i++ {
		pos, ok := drawSuitable(g, maxAttempts, rnd)
		if !ok {
			return nil, fmt.Errorf("hazard %d of %d after %d attempts: %w", i+1, count, maxAttempts, ErrPlacementExhausted)
		}
		hazards = append(hazards, Hazard{Pos: pos, Kind: catalog.Pick(rnd).Name})
	}
	return hazards, nil
}

func drawSuitable(g *Grid, maxAttempts int, rnd Rand) (Position, bool) {
	if g.Cols == 0 || g.Rows == 0 {
		return Position{}, false
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := Position{Col: rnd.Intn(g.Cols), Row: rnd.Intn(g.Rows)}
		if IsSuitable(g, p) {
			return p, true
		}
	}
	return Position{}, false
}
