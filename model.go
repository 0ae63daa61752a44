package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameState int

const (
	CONNECTING GameState = iota + 1
	CONNECTED
	DISCONNECTED
)

func (s GameState) Name() string {
	switch s {
	case CONNECTING:
		return "CONNECTING"
	case CONNECTED:
		return "CONNECTED"
	case DISCONNECTED:
		return "DISCONNECTED"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Sprite is a white pixel stretched and tinted into rectangles.
type Sprite struct {
	image *ebiten.Image
}

func NewSprite() *Sprite {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &Sprite{image: img}
}

func (s *Sprite) Draw(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(s.image, op)
}

func lerp(from, to int, t float64) float64 {
	return float64(from) + (float64(to)-float64(from))*t
}
