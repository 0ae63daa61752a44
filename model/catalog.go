package model

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

type TokenKind struct {
	Name        string
	Points      int
	Title       string
	Description string
}

type HazardKind struct {
	Name  string
	Color string
}

// TokenCatalog is ranked by points, highest first, and indexed by name.
type TokenCatalog struct {
	kinds     []TokenKind
	byName    map[string]TokenKind
	maxPoints int
	total     int
}

func NewTokenCatalog(kinds []TokenKind) (*TokenCatalog, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("token catalog is empty: %w", ErrInvalidCatalog)
	}
	sorted := append([]TokenKind(nil), kinds...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})
	tc := &TokenCatalog{
		kinds:     sorted,
		byName:    make(map[string]TokenKind, len(sorted)),
		maxPoints: sorted[0].Points,
	}
	for _, k := range sorted {
		if k.Name == "" {
			return nil, fmt.Errorf("token without name: %w", ErrInvalidCatalog)
		}
		if k.Points < 1 {
			return nil, fmt.Errorf("token %q has %d points: %w", k.Name, k.Points, ErrInvalidCatalog)
		}
		if _, dup := tc.byName[k.Name]; dup {
			return nil, fmt.Errorf("token %q listed twice: %w", k.Name, ErrInvalidCatalog)
		}
		tc.byName[k.Name] = k
	}
	for _, k := range sorted {
		tc.total += tc.Weight(k)
	}
	return tc, nil
}

func (tc *TokenCatalog) Kinds() []TokenKind {
	return append([]TokenKind(nil), tc.kinds...)
}

func (tc *TokenCatalog) Lookup(name string) (TokenKind, bool) {
	k, ok := tc.byName[name]
	return k, ok
}

func (tc *TokenCatalog) MaxPoints() int {
	return tc.maxPoints
}

// Weight favors cheap tokens: maxPoints+1-points.
func (tc *TokenCatalog) Weight(k TokenKind) int {
	return tc.maxPoints + 1 - k.Points
}

// Sample draws one kind by cumulative weight from a single uniform draw.
func (tc *TokenCatalog) Sample(rnd Rand) TokenKind {
	r := rnd.Intn(tc.total)
	for _, k := range tc.kinds {
		w := tc.Weight(k)
		if r < w {
			return k
		}
		r -= w
	}
	return tc.kinds[len(tc.kinds)-1]
}

type HazardCatalog struct {
	kinds  []HazardKind
	byName map[string]HazardKind
}

func NewHazardCatalog(kinds []HazardKind) (*HazardCatalog, error) {
	hc := &HazardCatalog{
		kinds:  append([]HazardKind(nil), kinds...),
		byName: make(map[string]HazardKind, len(kinds)),
	}
	for _, k := range kinds {
		if k.Name == "" {
			return nil, fmt.Errorf("hazard without name: %w", ErrInvalidCatalog)
		}
		if _, dup := hc.byName[k.Name]; dup {
			return nil, fmt.Errorf("hazard %q listed twice: %w", k.Name, ErrInvalidCatalog)
		}
		hc.byName[k.Name] = k
	}
	return hc, nil
}

func (hc *HazardCatalog) Kinds() []HazardKind {
	return append([]HazardKind(nil), hc.kinds...)
}

func (hc *HazardCatalog) Lookup(name string) (HazardKind, bool) {
	k, ok := hc.byName[name]
	return k, ok
}

// Pick returns a uniformly chosen kind, or the zero kind for an empty catalog.
func (hc *HazardCatalog) Pick(rnd Rand) HazardKind {
	if hc == nil || len(hc.kinds) == 0 {
		return HazardKind{}
	}
	return hc.kinds[rnd.Intn(len(hc.kinds))]
}
