// Command preview prints a variant's generated maze and reports how
// playable it is.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/model"
	"github.com/zucenko/codemaze/variants"
	"golang.org/x/term"
)

func main() {
	registry := variants.Builtin()
	variant := flag.String("variant", variants.DefaultName, "maze to preview")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	list := flag.Bool("list", false, "list variants and exit")
	flag.Parse()

	if *list {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return
	}

	v, err := registry.Lookup(*variant)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))
	bp, err := model.NewBlueprint(v.Config(), rnd)
	if err != nil {
		log.Fatal(err)
	}
	hazards, err := bp.SeedHazards(rnd)
	if err != nil {
		log.Fatal(err)
	}

	fd := int(os.Stdout.Fd())
	colored := term.IsTerminal(fd)
	if colored {
		if width, _, err := term.GetSize(fd); err == nil && width < bp.Grid.Cols {
			log.Warnf("terminal is %d columns, maze needs %d", width, bp.Grid.Cols)
		}
	}
	if err := writeMaze(os.Stdout, bp, hazards, colored); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("seed       %d\n", *seed)
	if _, err := NewReport(bp, hazards).WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
