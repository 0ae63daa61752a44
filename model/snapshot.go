package model

// Snapshot is a self-contained copy of session state for renderers.
type Snapshot struct {
	Variant    string
	Cols, Rows int
	Matrix     [][]Cell
	Player     Position
	Hazards    []Hazard
	Score      int
	HighScore  int
	Phase      Phase
	TokensLeft int
}

func (s *Snapshot) Cell(p Position) Cell {
	return s.Matrix[p.Col][p.Row]
}

// HazardAt returns the first hazard standing on p.
func (s *Snapshot) HazardAt(p Position) (Hazard, bool) {
	for _, h := range s.Hazards {
		if h.Pos == p {
			return h, true
		}
	}
	return Hazard{}, false
}
