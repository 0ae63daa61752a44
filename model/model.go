package model

import "fmt"

type CellKind int

const (
	EMPTY CellKind = iota
	WALL
	TOKEN
)

func (k CellKind) Name() string {
	switch k {
	case EMPTY:
		return "EMPTY"
	case WALL:
		return "WALL"
	case TOKEN:
		return "TOKEN"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Cell is one static maze square. Char is the source character of a wall,
// Token and Points are set only for TOKEN cells.
type Cell struct {
	Kind   CellKind
	Char   rune
	Token  string
	Points int
}

func EmptyCell() Cell {
	return Cell{Kind: EMPTY}
}

func WallCell(ch rune) Cell {
	return Cell{Kind: WALL, Char: ch}
}

func TokenCell(kind TokenKind) Cell {
	return Cell{Kind: TOKEN, Token: kind.Name, Points: kind.Points}
}

type Position struct {
	Col, Row int
}

func (p Position) Add(d Delta) Position {
	return Position{Col: p.Col + d.DCol, Row: p.Row + d.DRow}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

type Delta struct {
	DCol, DRow int
}

// Direction indexes Directions: right, down, left, up.
type Direction int

const (
	RIGHT Direction = iota
	DOWN
	LEFT
	UP
)

var Directions = [4]Delta{
	{DCol: 1},
	{DRow: 1},
	{DCol: -1},
	{DRow: -1},
}

func (d Direction) Delta() Delta {
	return Directions[int(d)&3]
}

func (d Direction) Name() string {
	switch d {
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case UP:
		return "UP"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

// Grid is the static maze, addressed Matrix[col][row].
type Grid struct {
	Cols, Rows int
	Matrix     [][]Cell
}

func NewEmptyGrid(cols, rows int) *Grid {
	matrix := make([][]Cell, cols)
	for c := 0; c < cols; c++ {
		matrix[c] = make([]Cell, rows)
	}
	return &Grid{Cols: cols, Rows: rows, Matrix: matrix}
}

func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.Cols && p.Row >= 0 && p.Row < g.Rows
}

// At returns the cell at p; callers check InBounds first.
func (g *Grid) At(p Position) Cell {
	return g.Matrix[p.Col][p.Row]
}

func (g *Grid) Set(p Position, c Cell) {
	g.Matrix[p.Col][p.Row] = c
}

func (g *Grid) Clone() *Grid {
	matrix := make([][]Cell, g.Cols)
	for c := range g.Matrix {
		matrix[c] = append([]Cell(nil), g.Matrix[c]...)
	}
	return &Grid{Cols: g.Cols, Rows: g.Rows, Matrix: matrix}
}

func (g *Grid) CountTokens() int {
	n := 0
	for c := 0; c < g.Cols; c++ {
		for r := 0; r < g.Rows; r++ {
			if g.Matrix[c][r].Kind == TOKEN {
				n++
			}
		}
	}
	return n
}

type Hazard struct {
	Pos  Position
	Kind string
}

// Rand is the randomness capability used by placement and hazard movement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
