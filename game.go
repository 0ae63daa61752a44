package main

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/codemaze/client"
	"github.com/zucenko/codemaze/model"
)

const (
	size = 14
	hud  = 28

	hopSeconds = 0.2
)

var background = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}

type Game struct {
	State  GameState
	Config Config
	Conn   *client.Connection
	View   client.View
	Tweens map[*gween.Tween]*Action
	Panel  *Nine

	Font  text.Face
	Glyph text.Face
	pixel *Sprite

	// progress of each hazard hop, index aligned with View.Current.Hazards
	progress   []float32
	scoreScale float64
	panelAlpha float32
	err        error
}

func NewGame(cfg Config) (*Game, error) {
	hudFace, err := LoadFont(18)
	if err != nil {
		return nil, err
	}
	glyphFace, err := LoadFont(float64(cfg.Size) * 0.9)
	if err != nil {
		return nil, err
	}
	conn, err := client.Dial(cfg.Addr, cfg.Variant)
	if err != nil {
		return nil, err
	}
	return &Game{
		State:      CONNECTING,
		Config:     cfg,
		Conn:       conn,
		Tweens:     make(map[*gween.Tween]*Action),
		Panel:      NewPanel(color.RGBA{0x34, 0xfb, 0xf6, 0xff}, color.RGBA{0x10, 0x10, 0x30, 0xf0}, 6),
		Font:       text.NewGoXFace(hudFace),
		Glyph:      text.NewGoXFace(glyphFace),
		pixel:      NewSprite(),
		scoreScale: 1,
		panelAlpha: 1,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Conn.Close()
		return ebiten.Termination
	}
	g.drain()
	g.updateTweens(1 / float32(ebiten.TPS()))

	if g.State != CONNECTED {
		return nil
	}
	if a, ok := g.action(); ok {
		if err := g.Conn.Send(a); err != nil {
			log.Warnf("send %s: %v", a.Name(), err)
			g.State = DISCONNECTED
			g.err = err
		}
	}
	return nil
}

func (g *Game) drain() {
	for g.State != DISCONNECTED {
		select {
		case mes, ok := <-g.Conn.Incoming:
			if !ok {
				g.State = DISCONNECTED
				g.err = g.Conn.Err()
				log.Infof("disconnected: %v", g.err)
				return
			}
			g.State = CONNECTED
			g.onChange(g.View.Apply(mes))
		default:
			return
		}
	}
}

func (g *Game) onChange(ch client.Change) {
	if ch.Setup {
		ebiten.SetWindowSize(g.Layout(0, 0))
		ebiten.SetWindowTitle("codemaze - " + g.View.Setup.Variant)
	}
	hazards := g.View.Current.Hazards
	if len(g.progress) != len(hazards) {
		g.progress = make([]float32, len(hazards))
		for i := range g.progress {
			g.progress[i] = 1
		}
	}
	for _, i := range ch.HazardsMoved {
		i := i
		g.progress[i] = 0
		hop := gween.New(0, 1, hopSeconds, ease.OutQuad)
		g.Tweens[hop] = &Action{onChange: func(v float32) {
			if i < len(g.progress) {
				g.progress[i] = v
			}
		}}
	}
	if ch.ScoreGained > 0 {
		scale := func(v float32) { g.scoreScale = float64(v) }
		grow := &Action{onChange: scale}
		grow.next(gween.New(1.5, 1, 0.15, ease.InQuad)).onChange = scale
		g.Tweens[gween.New(1, 1.5, 0.08, ease.OutQuad)] = grow
	}
	if ch.PhaseChanged && g.View.Current.Phase == model.GAME_OVER {
		fade := &Action{onChange: func(v float32) { g.panelAlpha = v }}
		score := g.View.Current.Score
		fade.addOnFinish(func() { log.Infof("game over, score %d", score) })
		g.Tweens[gween.New(0, 1, 0.4, ease.Linear)] = fade
	}
}

func (g *Game) action() (model.Action, bool) {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}
	switch {
	case pressed(ebiten.KeyArrowRight, ebiten.KeyD):
		return model.MOVE_RIGHT, true
	case pressed(ebiten.KeyArrowDown, ebiten.KeyS):
		return model.MOVE_DOWN, true
	case pressed(ebiten.KeyArrowLeft, ebiten.KeyA):
		return model.MOVE_LEFT, true
	case pressed(ebiten.KeyArrowUp, ebiten.KeyW):
		return model.MOVE_UP, true
	case pressed(ebiten.KeyEnter, ebiten.KeySpace):
		switch g.View.Current.Phase {
		case model.INTRO:
			return model.START, true
		case model.GAME_OVER:
			return model.RESTART, true
		}
	}
	return 0, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w, _ := g.Layout(0, 0)
	if !g.View.HasState {
		msg := "connecting to " + g.Config.Addr
		if g.State == DISCONNECTED {
			msg = fmt.Sprintf("disconnected: %v", g.err)
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
		return
	}

	s := g.View.Current
	cs := float64(g.Config.Size)
	for c := 0; c < s.Cols; c++ {
		for r := 0; r < s.Rows; r++ {
			cell := s.Matrix[c][r]
			x, y := float64(c)*cs, float64(r)*cs+hud
			switch cell.Kind {
			case model.WALL:
				g.pixel.Draw(screen, x, y, cs, cs, client.WallColor)
				if cell.Char != ' ' {
					g.write(screen, g.Glyph, string(cell.Char), x+cs*0.2, y, color.RGBA{0xaa, 0xaa, 0xaa, 0xff})
				}
			case model.TOKEN:
				inset := cs * 0.3
				g.pixel.Draw(screen, x+inset, y+inset, cs-2*inset, cs-2*inset, g.View.TokenColor(cell))
			}
		}
	}

	g.pixel.Draw(screen, float64(s.Player.Col)*cs+1, float64(s.Player.Row)*cs+hud+1, cs-2, cs-2, client.PlayerColor)
	for i, h := range s.Hazards {
		from, t := h.Pos, 1.0
		if i < len(g.View.From) && i < len(g.progress) {
			from, t = g.View.From[i], float64(g.progress[i])
		}
		x := lerp(from.Col, h.Pos.Col, t) * cs
		y := lerp(from.Row, h.Pos.Row, t)*cs + hud
		g.pixel.Draw(screen, x+2, y+2, cs-4, cs-4, g.View.HazardColor(h.Kind))
	}

	g.drawHud(screen, s)
	switch s.Phase {
	case model.INTRO:
		g.drawPanel(screen, 1, g.introLines(s))
	case model.GAME_OVER:
		g.drawPanel(screen, g.panelAlpha, gameOverLines(s))
	}
	ebitenutil.DebugPrintAt(screen, g.State.Name(), w-90, 4)
}

func (g *Game) drawHud(screen *ebiten.Image, s model.Snapshot) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(g.scoreScale, g.scoreScale)
	op.GeoM.Translate(6, 4)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("%05d", s.Score), g.Font, op)
	g.write(screen, g.Font, fmt.Sprintf("HI %05d  left %d", s.HighScore, s.TokensLeft), 110, 4, color.RGBA{0xaa, 0xaa, 0xaa, 0xff})
}

func (g *Game) introLines(s model.Snapshot) []string {
	lines := []string{g.View.Setup.Variant, "", "ENTER to start, arrows to move", ""}
	tokens := append([]model.TokenKind(nil), g.View.Setup.Tokens...)
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].Points > tokens[j].Points })
	for i, t := range tokens {
		if i == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("%s  +%d", g.View.TokenTitle(t.Name), t.Points))
	}
	return append(lines, "", fmt.Sprintf("record %d", s.HighScore))
}

func gameOverLines(s model.Snapshot) []string {
	record := fmt.Sprintf("record %d", s.HighScore)
	if s.Score > 0 && s.Score == s.HighScore {
		record = "NEW RECORD"
	}
	return []string{"GAME OVER", "", fmt.Sprintf("score %d", s.Score), record, "", "ENTER to play again"}
}

func (g *Game) drawPanel(screen *ebiten.Image, alpha float32, lines []string) {
	w, h := g.Layout(0, 0)
	const lineHeight = 24
	pw := w - 40
	if pw > 460 {
		pw = 460
	}
	ph := len(lines)*lineHeight + 32
	x, y := (w-pw)/2, (h-ph)/2
	g.Panel.alpha = alpha
	g.Panel.SetPosition(x, y)
	g.Panel.SetSize(pw, ph)
	g.Panel.Draw(screen)
	for i, l := range lines {
		lw, _ := text.Measure(l, g.Font, lineHeight)
		g.write(screen, g.Font, l, float64(x)+(float64(pw)-lw)/2, float64(y+16+i*lineHeight),
			color.NRGBA{0xff, 0xff, 0xff, uint8(255 * alpha)})
	}
}

func (g *Game) write(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.View.Ready {
		return 640, 480
	}
	return g.View.Setup.Cols * g.Config.Size, g.View.Setup.Rows*g.Config.Size + hud
}

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("codemaze")
	ebiten.SetWindowSize(640, 480)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
