package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/zucenko/codemaze/model"
)

var (
	colorWall   = color.Style{color.FgGray}
	colorToken  = color.Style{color.FgGreen, color.OpBold}
	colorCheap  = color.Style{color.FgGreen}
	colorHazard = color.Style{color.FgRed, color.OpBold}
	colorPlayer = color.Style{color.FgYellow, color.OpBold}
	colorLost   = color.Style{color.FgMagenta}
)

// Report summarizes a generated maze.
type Report struct {
	Variant         string
	Cols, Rows      int
	Tokens          int
	Points          int
	Suitable        int
	ReachableCells  int
	ReachableTokens int
	Hazards         int
}

func NewReport(bp *model.Blueprint, hazards []model.Hazard) Report {
	r := Report{
		Variant:  bp.Name,
		Cols:     bp.Grid.Cols,
		Rows:     bp.Grid.Rows,
		Suitable: len(model.SuitableCells(bp.Grid)),
		Hazards:  len(hazards),
	}
	reach := model.Reachable(bp.Grid, bp.Start)
	r.ReachableCells = reach.Size()
	for c := 0; c < bp.Grid.Cols; c++ {
		for row := 0; row < bp.Grid.Rows; row++ {
			cell := bp.Grid.Matrix[c][row]
			if cell.Kind != model.TOKEN {
				continue
			}
			r.Tokens++
			r.Points += cell.Points
			if reach.Has(model.Position{Col: c, Row: row}) {
				r.ReachableTokens++
			}
		}
	}
	return r
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "variant    %s\n", r.Variant)
	fmt.Fprintf(&b, "size       %dx%d\n", r.Cols, r.Rows)
	fmt.Fprintf(&b, "tokens     %d worth %d\n", r.Tokens, r.Points)
	fmt.Fprintf(&b, "reachable  %d tokens, %d cells\n", r.ReachableTokens, r.ReachableCells)
	fmt.Fprintf(&b, "suitable   %d cells\n", r.Suitable)
	fmt.Fprintf(&b, "hazards    %d\n", r.Hazards)
	if lost := r.Tokens - r.ReachableTokens; lost > 0 {
		fmt.Fprintf(&b, "warning    %d tokens cannot be reached from the start\n", lost)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// writeMaze prints one character per cell. Tokens print their first rune,
// unreachable ones are marked when colored.
func writeMaze(w io.Writer, bp *model.Blueprint, hazards []model.Hazard, colored bool) error {
	reach := model.Reachable(bp.Grid, bp.Start)
	hazardAt := make(map[model.Position]bool, len(hazards))
	for _, h := range hazards {
		hazardAt[h.Pos] = true
	}
	half := bp.Tokens.MaxPoints() / 2

	paint := func(st color.Style, s string) string {
		if !colored {
			return s
		}
		return st.Sprint(s)
	}

	var b strings.Builder
	for row := 0; row < bp.Grid.Rows; row++ {
		for c := 0; c < bp.Grid.Cols; c++ {
			p := model.Position{Col: c, Row: row}
			cell := bp.Grid.At(p)
			switch {
			case p == bp.Start:
				b.WriteString(paint(colorPlayer, "@"))
			case hazardAt[p]:
				b.WriteString(paint(colorHazard, "x"))
			case cell.Kind == model.WALL:
				b.WriteString(paint(colorWall, string(cell.Char)))
			case cell.Kind == model.TOKEN:
				st := colorToken
				if cell.Points <= half {
					st = colorCheap
				}
				if !reach.Has(p) {
					st = colorLost
				}
				b.WriteString(paint(st, string(firstRune(cell.Token))))
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '.'
}
