package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/highscore"
	"github.com/zucenko/codemaze/server"
	"github.com/zucenko/codemaze/variants"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(cfg.LogLevel)

	store := highscore.NewFileStore(cfg.ScoresPath)
	log.Infof("high scores in %s", store.Path())

	Server := Server{
		GameServer: server.NewGameServer(cfg, variants.Builtin(), highscore.NewKeeper(store, highscore.DefaultKey)),
	}
	Server.routes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go Server.GameServer.Loop(ctx)

	httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: Server.router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warnf("shutdown: %v", err)
		}
	}()

	log.Infof("listening on :%s", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
	}
}
