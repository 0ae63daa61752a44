// Command tui plays a maze in the terminal without a server.
package main

import (
	"context"
	_ "embed"
	"flag"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/game"
	"github.com/zucenko/codemaze/highscore"
	"github.com/zucenko/codemaze/model"
	"github.com/zucenko/codemaze/variants"
)

//go:embed en.po
var enPo []byte

func loadStrings() *gotext.Po {
	po := gotext.NewPo()
	po.Parse(enPo)
	return po
}

func defaultScores() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "codemaze", "scores.json")
}

func fatal(err error) {
	log.SetOutput(os.Stderr)
	log.Fatal(err)
}

func main() {
	variant := flag.String("variant", variants.DefaultName, "maze to play")
	scores := flag.String("scores", defaultScores(), "high score file")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	tick := flag.Duration("tick", game.DefaultTickInterval, "hazard move interval")
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	// the screen owns stdout
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	v, err := variants.Builtin().Lookup(*variant)
	if err != nil {
		fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))
	bp, err := model.NewBlueprint(v.Config(), rnd)
	if err != nil {
		fatal(err)
	}
	keeper := highscore.NewKeeper(highscore.NewFileStore(*scores), highscore.DefaultKey)
	session, err := model.NewSession(bp, keeper, rnd)
	if err != nil {
		fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err := screen.Init(); err != nil {
		fatal(err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	app := NewApp(screen, game.NewRunner(session, *tick), bp.Tokens.Kinds(), loadStrings())
	if err := app.Run(ctx); err != nil {
		log.Error(err)
	}
}
