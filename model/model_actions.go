package model

import "fmt"

type Action int

const (
	MOVE_RIGHT Action = iota
	MOVE_DOWN
	MOVE_LEFT
	MOVE_UP
	START
	RESTART
)

func (a Action) Name() string {
	switch a {
	case MOVE_RIGHT, MOVE_DOWN, MOVE_LEFT, MOVE_UP:
		return "MOVE_" + Direction(a).Name()
	case START:
		return "START"
	case RESTART:
		return "RESTART"
	default:
		return fmt.Sprintf("N/A(%d)", a)
	}
}

// Apply dispatches an input action and reports whether state changed.
func (s *Session) Apply(a Action) bool {
	switch a {
	case MOVE_RIGHT, MOVE_DOWN, MOVE_LEFT, MOVE_UP:
		return s.Move(Direction(a))
	case START:
		return s.Start()
	case RESTART:
		return s.Restart()
	}
	return false
}

func (s *Session) Start() bool {
	if s.phase != INTRO {
		return false
	}
	s.phase = PLAYING
	return true
}

func (s *Session) Move(d Direction) bool {
	return s.MoveBy(d.Delta())
}

// MoveBy moves the player when the target is legal, collecting any token
// there. Illegal moves and moves outside PLAYING are silent no-ops.
func (s *Session) MoveBy(d Delta) bool {
	if s.phase != PLAYING {
		return false
	}
	m := TryMove(s.grid, s.player, d)
	if !m.Allowed {
		return false
	}
	if m.Cell.Kind == TOKEN {
		s.score += m.Cell.Points
		s.grid.Set(m.Target, EmptyCell())
	}
	s.player = m.Target
	s.checkCollision()
	return true
}

func (s *Session) Tick() bool {
	if s.phase != PLAYING {
		return false
	}
	s.hazards = TickHazards(s.grid, s.hazards, s.rnd)
	s.checkCollision()
	return true
}

// Restart restores the blueprint grid and reseeds hazards. The high score
// survives. Should reseeding fail, hazards go back to where this session
// first placed them.
func (s *Session) Restart() bool {
	if s.phase != GAME_OVER {
		return false
	}
	s.grid = s.blueprint.Grid.Clone()
	s.player = s.blueprint.Start
	hazards, err := s.blueprint.SeedHazards(s.rnd)
	if err != nil {
		hazards = append([]Hazard(nil), s.initialHazards...)
	}
	s.hazards = hazards
	s.score = 0
	s.phase = PLAYING
	return true
}

func (s *Session) checkCollision() {
	for _, h := range s.hazards {
		if h.Pos == s.player {
			s.gameOver()
			return
		}
	}
}

func (s *Session) gameOver() {
	s.phase = GAME_OVER
	if s.score > s.highScore {
		s.highScore = s.score
		if s.scores != nil {
			s.scores.SaveHighScore(s.score)
		}
	}
}
