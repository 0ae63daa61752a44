package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Nine draws a nine-slice panel: corners keep their size, edges and the
// center stretch.
type Nine struct {
	image     *ebiten.Image
	alpha     float32
	positions [4]int
	x, y      int
	width     int
	height    int
}

// NewPanel generates the panel source: a bordered square cut at corner
// pixels from each edge.
func NewPanel(border, fill color.Color, corner int) *Nine {
	side := corner*2 + 2
	img := ebiten.NewImage(side, side)
	img.Fill(border)
	inner := img.SubImage(image.Rect(2, 2, side-2, side-2)).(*ebiten.Image)
	inner.Fill(fill)
	return &Nine{
		image:     img,
		alpha:     1,
		positions: [4]int{0, corner, side - corner, side},
	}
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
}

// targets are the screen edges of the three columns (or rows) of slices.
func (n *Nine) targets(origin, length int) [4]float64 {
	p := n.positions
	return [4]float64{
		float64(origin),
		float64(origin) + float64(p[1]-p[0]),
		float64(origin+length) - float64(p[3]-p[2]),
		float64(origin + length),
	}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	xs := n.targets(n.x, n.width)
	ys := n.targets(n.y, n.height)
	p := n.positions
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			src := image.Rect(p[col], p[row], p[col+1], p[row+1])
			if src.Dx() == 0 || src.Dy() == 0 || xs[col+1] <= xs[col] || ys[row+1] <= ys[row] {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale((xs[col+1]-xs[col])/float64(src.Dx()), (ys[row+1]-ys[row])/float64(src.Dy()))
			op.GeoM.Translate(xs[col], ys[row])
			op.ColorScale.ScaleAlpha(n.alpha)
			screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op)
		}
	}
}
