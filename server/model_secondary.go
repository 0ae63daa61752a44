package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

type ResponseCode int

const (
	GAME_READY ResponseCode = iota
	GAME_NOT_FOUND
	GAME_INVALIDE
	GAME_SHUTDOWN
	GAME_TIMEOUT
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case GAME_READY:
		return http.StatusOK
	case GAME_NOT_FOUND:
		return http.StatusNotFound
	case GAME_INVALIDE:
		return http.StatusBadRequest
	case GAME_SHUTDOWN:
		return http.StatusServiceUnavailable
	case GAME_TIMEOUT:
		return http.StatusRequestTimeout
	default:
		panic(h)
	}
}

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_NEW:
		return "GS_NEW"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_ERR:
		return "GS_ERR"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

func (ps PlayerSessionState) Name() string {
	switch ps {
	case PS_NEW:
		return "NEW"
	case PS_PLAY:
		return "PLAY"
	case PS_OVER:
		return "OVER"
	case PS_ERR:
		return "ERR"
	default:
		return "N/A"
	}
}

type GameContextAwaiting struct {
	ResponseCode ResponseCode
	Message      string
	GameSession  *GameSession
}

type GameRequest struct {
	Variant             string
	GameContextAwaiting chan GameContextAwaiting
}

type SessionEnd struct {
	Id  uuid.UUID
	Err error
}

type VariantsResponse struct {
	Default  string   `json:"default"`
	Variants []string `json:"variants"`
}
