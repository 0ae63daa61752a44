package model

import "fmt"

type Phase int

const (
	INTRO Phase = iota + 1
	PLAYING
	GAME_OVER
)

func (p Phase) Name() string {
	switch p {
	case INTRO:
		return "INTRO"
	case PLAYING:
		return "PLAYING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

// ScoreKeeper is the persistence side of the high score. HighScore is read
// once per session; SaveHighScore is called once per record-breaking game over.
type ScoreKeeper interface {
	HighScore() int
	SaveHighScore(score int)
}

// Session holds the mutable state of one game. It is not safe for
// concurrent use; game.Runner serializes access.
type Session struct {
	blueprint *Blueprint
	scores    ScoreKeeper
	rnd       Rand

	grid           *Grid
	player         Position
	hazards        []Hazard
	initialHazards []Hazard
	score          int
	highScore      int
	phase          Phase
}

// NewSession builds a session in INTRO. It is the only session operation
// that can fail: ErrPlacementExhausted when hazards cannot be seeded.
func NewSession(bp *Blueprint, scores ScoreKeeper, rnd Rand) (*Session, error) {
	hazards, err := bp.SeedHazards(rnd)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", bp.Name, err)
	}
	s := &Session{
		blueprint:      bp,
		scores:         scores,
		rnd:            rnd,
		grid:           bp.Grid.Clone(),
		player:         bp.Start,
		hazards:        hazards,
		initialHazards: append([]Hazard(nil), hazards...),
		phase:          INTRO,
	}
	if scores != nil {
		s.highScore = scores.HighScore()
	}
	return s, nil
}

func (s *Session) Blueprint() *Blueprint { return s.blueprint }
func (s *Session) Phase() Phase          { return s.phase }
func (s *Session) Score() int            { return s.score }
func (s *Session) HighScore() int        { return s.highScore }
func (s *Session) Player() Position      { return s.player }

func (s *Session) Hazards() []Hazard {
	return append([]Hazard(nil), s.hazards...)
}

// Cell reads the live grid, tokens already collected are EMPTY.
func (s *Session) Cell(p Position) Cell {
	return s.grid.At(p)
}

func (s *Session) Snapshot() Snapshot {
	g := s.grid.Clone()
	return Snapshot{
		Variant:    s.blueprint.Name,
		Cols:       g.Cols,
		Rows:       g.Rows,
		Matrix:     g.Matrix,
		Player:     s.player,
		Hazards:    s.Hazards(),
		Score:      s.score,
		HighScore:  s.highScore,
		Phase:      s.phase,
		TokensLeft: g.CountTokens(),
	}
}
