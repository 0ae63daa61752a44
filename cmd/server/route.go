package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play/:variant"
const URI_WS_DEFAULT = "/play"
const URI_VARIANTS = "/variants"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_WS_DEFAULT, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_VARIANTS, s.GameServer.HandleVariants())
}
