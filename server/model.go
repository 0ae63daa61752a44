package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/zucenko/codemaze/game"
	"github.com/zucenko/codemaze/model"
	"github.com/zucenko/codemaze/variants"
)

type GameServer struct {
	GameSessions map[uuid.UUID]*GameSession
	GameRequests chan GameRequest
	Ended        chan SessionEnd
	Upgrader     *websocket.Upgrader
	Variants     *variants.Registry
	Scores       model.ScoreKeeper
	Config       Config

	stopped chan struct{}
	seeded  int64
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

type GameSession struct {
	Id            uuid.UUID
	State         GameSessionState
	Blueprint     *model.Blueprint
	Runner        *game.Runner
	PlayerSession *PlayerSession

	cancel context.CancelFunc
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	Id          uuid.UUID
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}

	mu    sync.Mutex
	state PlayerSessionState
	err   error
	once  sync.Once

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
