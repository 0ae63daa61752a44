package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/game"
	"github.com/zucenko/codemaze/model"
)

const (
	DefaultPort       = "8080"
	DefaultScoresPath = "codemaze-scores.json"
	DefaultTimeout    = 200 * time.Millisecond
)

type Config struct {
	Port         string
	ScoresPath   string
	TickInterval time.Duration
	LogLevel     log.Level
	// Timeout bounds every hand-off between an http handler and the loop.
	Timeout time.Duration
	// Seed makes sessions reproducible when set.
	Seed int64
}

// ConfigFromEnv reads PORT, CODEMAZE_SCORES, CODEMAZE_TICK and
// CODEMAZE_LOG_LEVEL. Missing values fall back to defaults.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		ScoresPath:   os.Getenv("CODEMAZE_SCORES"),
		TickInterval: game.DefaultTickInterval,
		LogLevel:     log.InfoLevel,
		Timeout:      DefaultTimeout,
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
		log.Printf("Defaulting to port %s", cfg.Port)
	}
	if cfg.ScoresPath == "" {
		cfg.ScoresPath = DefaultScoresPath
	}
	if tick := os.Getenv("CODEMAZE_TICK"); tick != "" {
		d, err := time.ParseDuration(tick)
		if err != nil {
			return cfg, fmt.Errorf("CODEMAZE_TICK: %w", err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("CODEMAZE_TICK: %s is not positive", d)
		}
		cfg.TickInterval = d
	}
	if level := os.Getenv("CODEMAZE_LOG_LEVEL"); level != "" {
		l, err := log.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			return cfg, fmt.Errorf("CODEMAZE_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = l
	}
	return cfg, nil
}

func (s *GameServer) nextRand() *rand.Rand {
	s.seeded++
	seed := s.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed + s.seeded))
}

// newGameSession builds the blueprint and session for one connection and
// starts its runner. Only the loop calls it.
func (s *GameServer) newGameSession(ctx context.Context, name string) (*GameSession, ResponseCode, string) {
	v := s.Variants.Default()
	if name != "" {
		var err error
		v, err = s.Variants.Lookup(name)
		if err != nil {
			return nil, GAME_NOT_FOUND, err.Error()
		}
	}

	rnd := s.nextRand()
	bp, err := model.NewBlueprint(v.Config(), rnd)
	if err != nil {
		log.Errorf("variant %q: %v", v.Name, err)
		return nil, GAME_INVALIDE, err.Error()
	}
	session, err := model.NewSession(bp, s.Scores, rnd)
	if err != nil {
		log.Errorf("variant %q: %v", v.Name, err)
		return nil, GAME_INVALIDE, err.Error()
	}

	runCtx, cancel := context.WithCancel(ctx)
	gs := &GameSession{
		Id:        uuid.New(),
		State:     GS_NEW,
		Blueprint: bp,
		Runner:    game.NewRunner(session, s.Config.TickInterval),
		cancel:    cancel,
	}
	go func() {
		if err := gs.Runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warnf("GameSession %s runner: %v", gs.Id, err)
		}
	}()
	gs.State = GS_PLAY
	log.Infof("GameSession %s created, variant %q, %dx%d, %d tokens, %d reachable",
		gs.Id, bp.Name, bp.Grid.Cols, bp.Grid.Rows, bp.Grid.CountTokens(), bp.ReachableTokens())
	return gs, GAME_READY, ""
}
