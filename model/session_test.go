package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyBlueprint(t *testing.T, hazards ...Position) *Blueprint {
	t.Helper()
	start := Position{0, 0}
	bp, err := NewBlueprint(BlueprintConfig{
		Name:         "tiny",
		Grid:         gridFrom(t, "...", ".5.", "..."),
		Tokens:       []TokenKind{{Name: "t5", Points: 5}},
		Hazards:      []HazardKind{{Name: "🐛", Color: "#FF0000"}},
		HazardStarts: hazards,
		Start:        &start,
	}, seeded(1))
	require.NoError(t, err)
	return bp
}

func startedSession(t *testing.T, bp *Blueprint, keeper ScoreKeeper) *Session {
	t.Helper()
	s, err := NewSession(bp, keeper, seeded(1))
	require.NoError(t, err)
	require.Equal(t, INTRO, s.Phase())
	require.True(t, s.Start())
	require.Equal(t, PLAYING, s.Phase())
	return s
}

func TestCollectTokenScenario(t *testing.T) {
	s := startedSession(t, tinyBlueprint(t), nil)

	assert.True(t, s.MoveBy(Delta{DCol: 1}))
	assert.True(t, s.MoveBy(Delta{DRow: 1}))

	assert.Equal(t, Position{1, 1}, s.Player())
	assert.Equal(t, 5, s.Score())
	assert.Equal(t, EMPTY, s.Cell(Position{1, 1}).Kind)
	assert.Equal(t, TOKEN, s.Blueprint().Grid.At(Position{1, 1}).Kind, "blueprint untouched")
}

func TestTokenCollectedExactlyOnce(t *testing.T) {
	s := startedSession(t, tinyBlueprint(t), nil)
	s.Move(RIGHT)
	s.Move(DOWN)
	s.Move(UP)
	s.Move(DOWN)
	assert.Equal(t, 5, s.Score())
	assert.Zero(t, s.Snapshot().TokensLeft)
}

func TestCollisionScenarioSavesHighScore(t *testing.T) {
	keeper := &recordingKeeper{}
	s := startedSession(t, tinyBlueprint(t, Position{2, 2}), keeper)

	s.Move(RIGHT)
	s.Move(DOWN)
	s.Move(RIGHT)
	assert.Equal(t, PLAYING, s.Phase())
	s.Move(DOWN)

	assert.Equal(t, Position{2, 2}, s.Player())
	assert.Equal(t, GAME_OVER, s.Phase())
	assert.Equal(t, 5, s.HighScore())
	assert.Equal(t, []int{5}, keeper.saves)

	// frozen after game over
	assert.False(t, s.Move(LEFT))
	assert.False(t, s.Tick())
	assert.Equal(t, []int{5}, keeper.saves)
}

func TestCollisionWithoutRecordDoesNotSave(t *testing.T) {
	keeper := &recordingKeeper{stored: 40}
	s := startedSession(t, tinyBlueprint(t, Position{1, 0}), keeper)
	assert.Equal(t, 40, s.HighScore())

	s.Move(RIGHT)
	assert.Equal(t, GAME_OVER, s.Phase())
	assert.Empty(t, keeper.saves)
	assert.Equal(t, 40, s.HighScore())
}

func TestTickCollision(t *testing.T) {
	// the only legal hazard step from (1,0) in "#..#" lands on (2,0)
	start := Position{2, 0}
	bp, err := NewBlueprint(BlueprintConfig{
		Name:         "corridor",
		Grid:         gridFrom(t, "#..#"),
		Tokens:       []TokenKind{{Name: "t1", Points: 1}},
		HazardStarts: []Position{{1, 0}},
		Start:        &start,
	}, seeded(1))
	require.NoError(t, err)
	s := startedSession(t, bp, nil)

	assert.True(t, s.Tick())
	assert.Equal(t, GAME_OVER, s.Phase())
}

func TestNoActionsBeforeStart(t *testing.T) {
	s, err := NewSession(tinyBlueprint(t, Position{2, 2}), nil, seeded(1))
	require.NoError(t, err)

	assert.False(t, s.Move(RIGHT))
	assert.False(t, s.Tick())
	assert.False(t, s.Restart())
	assert.Equal(t, Position{0, 0}, s.Player())
	assert.Equal(t, []Hazard{{Pos: Position{2, 2}, Kind: "🐛"}}, s.Hazards())

	assert.True(t, s.Apply(START))
	assert.False(t, s.Apply(START), "start only leaves INTRO")
}

func TestIllegalMoveIsSilent(t *testing.T) {
	s := startedSession(t, tinyBlueprint(t), nil)
	before := s.Snapshot()
	assert.False(t, s.Move(UP))
	assert.False(t, s.Move(LEFT))
	assert.Equal(t, before, s.Snapshot())
}

func TestRestartResetsProgressButKeepsRecord(t *testing.T) {
	keeper := &recordingKeeper{}
	s := startedSession(t, tinyBlueprint(t, Position{2, 2}), keeper)
	assert.False(t, s.Restart(), "restart only leaves GAME_OVER")

	for _, d := range []Direction{RIGHT, DOWN, RIGHT, DOWN} {
		s.Move(d)
	}
	require.Equal(t, GAME_OVER, s.Phase())

	assert.True(t, s.Apply(RESTART))
	assert.Equal(t, PLAYING, s.Phase())
	assert.Zero(t, s.Score())
	assert.Equal(t, 5, s.HighScore())
	assert.Equal(t, Position{0, 0}, s.Player())
	assert.Equal(t, TOKEN, s.Cell(Position{1, 1}).Kind)
	assert.Equal(t, []Hazard{{Pos: Position{2, 2}, Kind: "🐛"}}, s.Hazards())

	// a poorer second game leaves the record alone
	s.Move(DOWN)
	s.Move(DOWN)
	s.Move(RIGHT)
	s.Move(RIGHT)
	require.Equal(t, GAME_OVER, s.Phase())
	assert.Equal(t, []int{5}, keeper.saves)
	assert.Equal(t, 5, s.HighScore())
}

func TestRestartReseedsRandomHazards(t *testing.T) {
	bp, err := NewBlueprint(BlueprintConfig{
		Name:        "open",
		Grid:        NewEmptyGrid(12, 12),
		Tokens:      []TokenKind{{Name: "t1", Points: 1}},
		Hazards:     []HazardKind{{Name: "bug"}},
		HazardCount: 4,
	}, seeded(1))
	require.NoError(t, err)
	s := startedSession(t, bp, nil)
	for _, h := range s.Hazards() {
		assert.True(t, IsSuitable(bp.Grid, h.Pos))
	}

	// walk into a hazard by teleporting it next to the player
	s.hazards[0].Pos = Position{2, 1}
	s.Move(RIGHT)
	require.Equal(t, GAME_OVER, s.Phase())

	require.True(t, s.Restart())
	assert.Len(t, s.Hazards(), 4)
	for _, h := range s.Hazards() {
		assert.True(t, IsSuitable(bp.Grid, h.Pos))
	}
}

func TestNewSessionFailsWhenHazardsCannotBePlaced(t *testing.T) {
	bp, err := NewBlueprint(BlueprintConfig{
		Name:                 "walled",
		Grid:                 gridFrom(t, "###", "#.#", "###"),
		Tokens:               []TokenKind{{Name: "t1", Points: 1}},
		HazardCount:          1,
		MaxPlacementAttempts: 100,
	}, seeded(1))
	require.NoError(t, err)

	_, err = NewSession(bp, nil, seeded(1))
	assert.ErrorIs(t, err, ErrPlacementExhausted)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := startedSession(t, tinyBlueprint(t, Position{2, 2}), nil)
	snap := s.Snapshot()
	snap.Matrix[1][1] = EmptyCell()
	snap.Hazards[0].Pos = Position{0, 0}

	assert.Equal(t, TOKEN, s.Cell(Position{1, 1}).Kind)
	assert.Equal(t, Position{2, 2}, s.Hazards()[0].Pos)

	fresh := s.Snapshot()
	h, ok := fresh.HazardAt(Position{2, 2})
	assert.True(t, ok)
	assert.Equal(t, "🐛", h.Kind)
	assert.Equal(t, "tiny", snap.Variant)
	assert.Equal(t, 1, s.Snapshot().TokensLeft)
}
