package main

import (
	"flag"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

type Config struct {
	Addr    string
	Variant string
	Size    int
}

func LoadConfig(args []string) (Config, error) {
	cfg := Config{}
	fs := flag.NewFlagSet("codemaze", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", "localhost:8080", "game server host:port")
	fs.StringVar(&cfg.Variant, "variant", "", "maze to play, server default when empty")
	fs.IntVar(&cfg.Size, "size", size, "cell size in pixels")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Size < 6 {
		cfg.Size = 6
	}
	return cfg, nil
}

func LoadFont(points float64) (font.Face, error) {
	tt, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    points,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
