package model

import "unicode/utf8"

// Padding decides which source characters become walls.
type Padding int

const (
	// PAD_SOLID turns every source character into a wall, spaces included.
	PAD_SOLID Padding = iota
	// PAD_OPEN_SPACES leaves spaces inside source lines open.
	PAD_OPEN_SPACES
)

// Rasterize lays lines out on a grid with a one cell empty border:
// cols = longest line + 2, rows = len(lines) + 2.
func Rasterize(lines []string, pad Padding) *Grid {
	longest := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	grid := NewEmptyGrid(longest+2, len(lines)+2)
	for y, line := range lines {
		x := 0
		for _, ch := range line {
			if ch != ' ' || pad == PAD_SOLID {
				grid.Matrix[x+1][y+1] = WallCell(ch)
			}
			x++
		}
	}
	return grid
}
