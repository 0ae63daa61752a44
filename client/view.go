package client

import (
	"image/color"

	gcolor "github.com/gookit/color"
	"github.com/zucenko/codemaze/model"
)

var (
	DefaultHazardColor = color.RGBA{0xfa, 0x36, 0x36, 0xff}
	WallColor          = color.RGBA{0x44, 0x44, 0x44, 0xff}
	PlayerColor        = color.RGBA{0xed, 0xbc, 0x1e, 0xff}
)

// View folds server messages into what the renderer draws.
type View struct {
	Setup    model.Setup
	Ready    bool
	Current  model.Snapshot
	HasState bool
	// From holds hazard positions before the last change, index aligned
	// with Current.Hazards.
	From []model.Position

	maxPoints    int
	hazardColors map[string]color.RGBA
}

type Change struct {
	Setup        bool
	HazardsMoved []int
	ScoreGained  int
	PhaseChanged bool
}

func (v *View) Apply(mes model.ServerMessage) Change {
	var ch Change
	for _, s := range mes.Setup {
		v.setup(s)
		ch.Setup = true
	}
	if len(mes.States) == 0 {
		return ch
	}

	before := v.Current
	hadState := v.HasState
	v.Current = mes.States[len(mes.States)-1]
	v.HasState = true

	if !hadState {
		v.From = positions(v.Current.Hazards)
		return ch
	}
	ch.PhaseChanged = before.Phase != v.Current.Phase
	if v.Current.Score > before.Score {
		ch.ScoreGained = v.Current.Score - before.Score
	}
	if ch.PhaseChanged && v.Current.Phase == model.PLAYING && before.Phase == model.GAME_OVER {
		// restart teleports hazards home
		v.From = positions(v.Current.Hazards)
		return ch
	}
	v.From = positions(before.Hazards)
	if len(v.From) != len(v.Current.Hazards) {
		v.From = positions(v.Current.Hazards)
		return ch
	}
	for i, h := range v.Current.Hazards {
		if h.Pos != v.From[i] {
			ch.HazardsMoved = append(ch.HazardsMoved, i)
		}
	}
	return ch
}

func (v *View) setup(s model.Setup) {
	v.Setup = s
	v.Ready = true
	v.maxPoints = 0
	for _, t := range s.Tokens {
		if t.Points > v.maxPoints {
			v.maxPoints = t.Points
		}
	}
	v.hazardColors = make(map[string]color.RGBA, len(s.Hazards))
	for _, h := range s.Hazards {
		v.hazardColors[h.Name] = ParseColor(h.Color, DefaultHazardColor)
	}
}

// TokenColor is green, more saturated the more a token is worth.
func (v *View) TokenColor(c model.Cell) color.RGBA {
	return TokenShade(c.Points, v.maxPoints)
}

func TokenShade(points, maxPoints int) color.RGBA {
	share := 1.0
	if maxPoints > 0 {
		share = float64(points) / float64(maxPoints)
	}
	s := 0.3 + 0.7*share
	grey := uint8(255 * (1 - s) * 0.5)
	return color.RGBA{grey, uint8(110 + 145*s), grey, 0xff}
}

func (v *View) HazardColor(kind string) color.RGBA {
	if c, ok := v.hazardColors[kind]; ok {
		return c
	}
	return DefaultHazardColor
}

// TokenTitle resolves the display title of a token kind, falling back to its name.
func (v *View) TokenTitle(name string) string {
	for _, t := range v.Setup.Tokens {
		if t.Name == name && t.Title != "" {
			return t.Title
		}
	}
	return name
}

// ParseColor reads "#rgb" or "#rrggbb".
func ParseColor(hex string, fallback color.RGBA) color.RGBA {
	rgb := gcolor.HexToRgb(hex)
	if len(rgb) != 3 {
		return fallback
	}
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 0xff}
}

func positions(hazards []model.Hazard) []model.Position {
	out := make([]model.Position, len(hazards))
	for i, h := range hazards {
		out[i] = h.Pos
	}
	return out
}
