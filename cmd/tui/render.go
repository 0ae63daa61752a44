package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"
	"github.com/zucenko/codemaze/client"
	"github.com/zucenko/codemaze/model"
)

// every maze cell takes two columns so emoji hazards line up
const cellWidth = 2

type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

func render(c canvas, s model.Snapshot, tokens []model.TokenKind, po *gotext.Po) {
	if s.Matrix == nil {
		return
	}
	maxPoints := 0
	for _, t := range tokens {
		if t.Points > maxPoints {
			maxPoints = t.Points
		}
	}

	for col := 0; col < s.Cols; col++ {
		for row := 0; row < s.Rows; row++ {
			cell := s.Matrix[col][row]
			switch cell.Kind {
			case model.WALL:
				put(c, col*cellWidth, row, cell.Char, wallStyle)
			case model.TOKEN:
				shade := client.TokenShade(cell.Points, maxPoints)
				st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(shade.R), int32(shade.G), int32(shade.B)))
				put(c, col*cellWidth, row, firstRune(cell.Token, '.'), st)
			}
		}
	}
	put(c, s.Player.Col*cellWidth, s.Player.Row, '@', playerStyle)
	for _, h := range s.Hazards {
		put(c, h.Pos.Col*cellWidth, h.Pos.Row, firstRune(h.Kind, '*'), tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	y := s.Rows + 1
	putText(c, 0, y, fmt.Sprintf("%s  %s  %s  %s",
		po.Get("TITLE", s.Variant), po.Get("SCORE", s.Score), po.Get("HIGH_SCORE", s.HighScore), po.Get("TOKENS_LEFT", s.TokensLeft)), hudStyle)
	y++
	switch s.Phase {
	case model.INTRO:
		putText(c, 0, y, po.Get("PRESS_START"), hintStyle)
		for i, t := range tokens {
			if i == 3 {
				break
			}
			title := t.Title
			if title == "" {
				title = t.Name
			}
			y++
			putText(c, 0, y, po.Get("COLLECT", title, t.Points), hudStyle)
		}
		putText(c, 0, y+1, po.Get("AVOID"), hudStyle)
	case model.GAME_OVER:
		putText(c, 0, y, po.Get("PRESS_RESTART"), hintStyle)
		if s.Score > 0 && s.Score == s.HighScore {
			putText(c, 0, y+1, po.Get("NEW_RECORD"), playerStyle)
		}
	}
}

// put draws one maze cell, padding narrow runes to cellWidth.
func put(c canvas, x, y int, r rune, st tcell.Style) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.SetContent(x, y, r, nil, st)
	if runewidth.RuneWidth(r) < cellWidth && x+1 < w {
		c.SetContent(x+1, y, ' ', nil, st)
	}
}

func putText(c canvas, x, y int, s string, st tcell.Style) {
	w, h := c.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		c.SetContent(x, y, r, nil, st)
		x += rw
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
