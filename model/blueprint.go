package model

import (
	"errors"
	"fmt"
)

var ErrInvalidBlueprint = errors.New("invalid blueprint")

// DefaultStart is where the player enters every maze.
var DefaultStart = Position{Col: 1, Row: 1}

type BlueprintConfig struct {
	Name    string
	Lines   []string
	Padding Padding
	// Grid, when set, is used as the finished layout and Lines are ignored.
	Grid         *Grid
	Tokens       []TokenKind
	Hazards      []HazardKind
	HazardCount  int
	HazardStarts []Position
	// Density of token placement; zero means DefaultDensity.
	Density float64
	// Start of the player; nil means DefaultStart.
	Start                *Position
	MaxPlacementAttempts int
}

// Blueprint is the immutable definition of one maze. Sessions copy Grid and
// never write to it.
type Blueprint struct {
	Name                 string
	Grid                 *Grid
	Tokens               *TokenCatalog
	Hazards              *HazardCatalog
	HazardCount          int
	HazardStarts         []Position
	Start                Position
	MaxPlacementAttempts int
}

func NewBlueprint(cfg BlueprintConfig, rnd Rand) (*Blueprint, error) {
	tokens, err := NewTokenCatalog(cfg.Tokens)
	if err != nil {
		return nil, fmt.Errorf("blueprint %q: %w", cfg.Name, err)
	}
	hazards, err := NewHazardCatalog(cfg.Hazards)
	if err != nil {
		return nil, fmt.Errorf("blueprint %q: %w", cfg.Name, err)
	}
	density := cfg.Density
	if density == 0 {
		density = DefaultDensity
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("blueprint %q: density %v: %w", cfg.Name, density, ErrInvalidBlueprint)
	}
	if cfg.HazardCount < 0 {
		return nil, fmt.Errorf("blueprint %q: hazard count %d: %w", cfg.Name, cfg.HazardCount, ErrInvalidBlueprint)
	}

	grid := cfg.Grid
	if grid != nil {
		grid = grid.Clone()
	} else {
		grid = PlaceTokens(Rasterize(cfg.Lines, cfg.Padding), tokens, density, rnd)
	}

	start := DefaultStart
	if cfg.Start != nil {
		start = *cfg.Start
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("blueprint %q: start %v outside %dx%d: %w", cfg.Name, start, grid.Cols, grid.Rows, ErrInvalidBlueprint)
	}
	for _, p := range cfg.HazardStarts {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("blueprint %q: hazard start %v outside %dx%d: %w", cfg.Name, p, grid.Cols, grid.Rows, ErrInvalidBlueprint)
		}
	}

	count := cfg.HazardCount
	if len(cfg.HazardStarts) > 0 {
		count = len(cfg.HazardStarts)
	}
	attempts := cfg.MaxPlacementAttempts
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts(grid)
	}

	return &Blueprint{
		Name:                 cfg.Name,
		Grid:                 grid,
		Tokens:               tokens,
		Hazards:              hazards,
		HazardCount:          count,
		HazardStarts:         append([]Position(nil), cfg.HazardStarts...),
		Start:                start,
		MaxPlacementAttempts: attempts,
	}, nil
}

// SeedHazards produces starting hazards: the fixed starts when the blueprint
// has them, random suitable cells otherwise.
func (bp *Blueprint) SeedHazards(rnd Rand) ([]Hazard, error) {
	if len(bp.HazardStarts) > 0 {
		hazards := make([]Hazard, len(bp.HazardStarts))
		for i, p := range bp.HazardStarts {
			hazards[i] = Hazard{Pos: p, Kind: bp.Hazards.Pick(rnd).Name}
		}
		return hazards, nil
	}
	return PlaceHazards(bp.Grid, bp.Hazards, bp.HazardCount, bp.MaxPlacementAttempts, rnd)
}

func (bp *Blueprint) ReachableTokens() int {
	return ReachableTokens(bp.Grid, bp.Start)
}
