package variants

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/zucenko/codemaze/model"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Variant is the data behind one maze; every variant runs on the same engine.
type Variant struct {
	Name        string
	Lines       []string
	Padding     model.Padding
	Tokens      []model.TokenKind
	Hazards     []model.HazardKind
	HazardCount int
	// CornerHazards spawns one hazard in each corner except the player's.
	CornerHazards bool
}

func (v Variant) Config() model.BlueprintConfig {
	cfg := model.BlueprintConfig{
		Name:        v.Name,
		Lines:       v.Lines,
		Padding:     v.Padding,
		Tokens:      v.Tokens,
		Hazards:     v.Hazards,
		HazardCount: v.HazardCount,
	}
	if v.CornerHazards {
		g := model.Rasterize(v.Lines, v.Padding)
		cfg.HazardStarts = []model.Position{
			{Col: g.Cols - 2, Row: 1},
			{Col: 1, Row: g.Rows - 2},
			{Col: g.Cols - 2, Row: g.Rows - 2},
		}
	}
	return cfg
}

type Registry struct {
	byName map[string]Variant
	names  []string
	def    string
}

func NewRegistry(def string, variants ...Variant) *Registry {
	r := &Registry{byName: make(map[string]Variant), def: def}
	for _, v := range variants {
		key := strings.ToLower(v.Name)
		if _, dup := r.byName[key]; !dup {
			r.names = append(r.names, v.Name)
		}
		r.byName[key] = v
	}
	return r
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Registry) Default() Variant {
	return r.byName[strings.ToLower(r.def)]
}

// Lookup is case-insensitive. Unknown names fail with ErrUnknownVariant
// and mention the closest names.
func (r *Registry) Lookup(name string) (Variant, error) {
	if v, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	if s := r.Suggest(name); len(s) > 0 {
		return Variant{}, fmt.Errorf("%q, did you mean %s: %w", name, strings.Join(s, " or "), ErrUnknownVariant)
	}
	return Variant{}, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
}

// Suggest ranks known names by edit distance to name, prefix matches first.
func (r *Registry) Suggest(name string) []string {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" {
		return nil
	}
	type scored struct {
		name string
		dist int
	}
	var results []scored
	for _, cand := range r.names {
		lc := strings.ToLower(cand)
		switch {
		case strings.HasPrefix(lc, token):
			results = append(results, scored{cand, 0})
		default:
			dist := levenshtein.ComputeDistance(token, lc)
			if dist > levenshteinLimit(len(lc)) {
				continue
			}
			results = append(results, scored{cand, dist})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})
	out := make([]string, 0, 3)
	for _, s := range results {
		out = append(out, s.name)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
