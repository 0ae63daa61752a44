package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values, falling back to zero when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// gridFrom builds a grid from rows of text: '#' wall, '.' empty, digits are
// tokens named "t<digit>" worth that many points.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	g := NewEmptyGrid(len(rows[0]), len(rows))
	for r, line := range rows {
		require.Len(t, line, g.Cols)
		for c, ch := range line {
			p := Position{Col: c, Row: r}
			switch {
			case ch == '#':
				g.Set(p, WallCell('#'))
			case ch >= '1' && ch <= '9':
				g.Set(p, TokenCell(TokenKind{Name: "t" + string(ch), Points: int(ch - '0')}))
			}
		}
	}
	return g
}

type recordingKeeper struct {
	stored int
	saves  []int
}

func (k *recordingKeeper) HighScore() int { return k.stored }

func (k *recordingKeeper) SaveHighScore(score int) {
	k.stored = score
	k.saves = append(k.saves, score)
}
