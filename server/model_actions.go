package server

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/model"
	"github.com/zucenko/codemaze/variants"
)

const writeWait = time.Second

var errRunnerStopped = errors.New("runner stopped")

func NewGameServer(cfg Config, registry *variants.Registry, scores model.ScoreKeeper) *GameServer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &GameServer{
		GameSessions: make(map[uuid.UUID]*GameSession),
		GameRequests: make(chan GameRequest),
		Ended:        make(chan SessionEnd),
		Upgrader:     &websocket.Upgrader{},
		Variants:     registry,
		Scores:       scores,
		Config:       cfg,
		stopped:      make(chan struct{}),
	}
}

// HandleHttpCall serves GET /play/:variant. An empty variant plays the
// default maze.
func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := s.Config.Timeout
	return func(w http.ResponseWriter, r *http.Request) {
		variant := way.Param(r.Context(), "variant")
		log.Infof("HandleHttpCall connection received, variant %q", variant)

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{Variant: variant, GameContextAwaiting: gcas}:
		case <-s.stopped:
			w.WriteHeader(GAME_SHUTDOWN.ToHttp())
			return
		case <-time.After(timeout):
			log.Warn("HandleHttpCall GameRequests TIMEOUTED")
			w.WriteHeader(GAME_TIMEOUT.ToHttp())
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			log.Debugf("HandleHttpCall GameContextAwaiting <- %d", gca.ResponseCode)
		case <-time.After(timeout):
			log.Warn("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			// the loop answers eventually, a late session must not outlive us
			go func() {
				if late := <-gcas; late.GameSession != nil {
					s.end(SessionEnd{Id: late.GameSession.Id})
				}
			}()
			w.WriteHeader(GAME_TIMEOUT.ToHttp())
			return
		}
		if gca.ResponseCode != GAME_READY {
			http.Error(w, gca.Message, gca.ResponseCode.ToHttp())
			return
		}
		gs := gca.GameSession

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			s.end(SessionEnd{Id: gs.Id, Err: err})
			return
		}
		defer con.Close()

		ps := gs.attach(con)
		<-ps.GameOver
		log.Infof("HandleHttpCall session %s over, player %s", gs.Id, ps.State().Name())
		s.end(SessionEnd{Id: gs.Id, Err: ps.Err()})
	}
}

// HandleVariants lists the playable mazes as JSON.
func (s *GameServer) HandleVariants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(VariantsResponse{
			Default:  s.Variants.Default().Name,
			Variants: s.Variants.Names(),
		})
		if err != nil {
			log.Warnf("HandleVariants %v", err)
		}
	}
}

func (s *GameServer) end(e SessionEnd) {
	select {
	case s.Ended <- e:
	case <-s.stopped:
	}
}

// Loop owns GameSessions. It returns when ctx is cancelled, stopping every
// session still running.
func (s *GameServer) Loop(ctx context.Context) {
	log.Info("GameServer.Loop starting")
	defer close(s.stopped)
	for {
		select {
		case <-ctx.Done():
			for id, gs := range s.GameSessions {
				gs.stop(GS_OVER)
				delete(s.GameSessions, id)
			}
			log.Info("GameServer.Loop stopped")
			return
		case req := <-s.GameRequests:
			gs, code, message := s.newGameSession(ctx, req.Variant)
			if gs != nil {
				s.GameSessions[gs.Id] = gs
			}
			req.GameContextAwaiting <- GameContextAwaiting{
				ResponseCode: code,
				Message:      message,
				GameSession:  gs,
			}
		case e := <-s.Ended:
			gs, ok := s.GameSessions[e.Id]
			if !ok {
				continue
			}
			state := GS_OVER
			if e.Err != nil {
				state = GS_ERR
				log.Warnf("GameSession %s ended: %v", e.Id, e.Err)
			}
			gs.stop(state)
			delete(s.GameSessions, e.Id)
			log.Infof("GameSession %s %s, %d running", e.Id, state.Name(), len(s.GameSessions))
		}
	}
}

func (gs *GameSession) stop(state GameSessionState) {
	gs.cancel()
	gs.State = state
}

func (gs *GameSession) attach(conn *websocket.Conn) *PlayerSession {
	ps := &PlayerSession{
		Id:          gs.Id,
		GameSession: gs,
		Conn:        conn,
		GameOver:    make(chan struct{}),
		state:       PS_NEW,
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(writeWait))
			ps.DebugLastPing = time.Now()
			ps.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	gs.PlayerSession = ps
	ps.setState(PS_PLAY)
	go ps.LoopChannelRead()
	go ps.LoopChannelWrite()
	return ps
}

func (ps *PlayerSession) State() PlayerSessionState {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.state
}

func (ps *PlayerSession) Err() error {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.err
}

func (ps *PlayerSession) setState(state PlayerSessionState) {
	ps.mu.Lock()
	ps.state = state
	ps.mu.Unlock()
}

// finish ends the player session once; a normal close is not an error.
func (ps *PlayerSession) finish(err error) {
	ps.once.Do(func() {
		ps.mu.Lock()
		switch {
		case err == nil, errors.Is(err, errRunnerStopped),
			websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
			ps.state = PS_OVER
		default:
			ps.state = PS_ERR
			ps.err = err
		}
		ps.mu.Unlock()
		close(ps.GameOver)
	})
}

func (ps *PlayerSession) LoopChannelRead() {
	log.Debugf("LoopChannelRead %s STARTED", ps.Id)
	for {
		_, r, err := ps.Conn.NextReader()
		if err != nil {
			ps.finish(err)
			break
		}
		cm := &model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(cm); err != nil {
			ps.finish(fmt.Errorf("decode client message: %w", err))
			break
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++
		log.Debugf("LoopChannelRead %s <- %s", ps.Id, cm.Action.Name())
		if !ps.GameSession.Runner.Submit(cm.Action) {
			log.Warnf("LoopChannelRead %s dropped %s", ps.Id, cm.Action.Name())
		}
	}
	log.Debugf("LoopChannelRead %s ENDED", ps.Id)
}

// LoopChannelWrite sends the setup, then every snapshot the runner
// publishes. Snapshots already queued go out in one message.
func (ps *PlayerSession) LoopChannelWrite() {
	log.Debugf("LoopChannelWrite %s STARTED", ps.Id)
	defer log.Debugf("LoopChannelWrite %s ENDED", ps.Id)

	setup := model.NewSetup(ps.Id.String(), ps.GameSession.Blueprint)
	if err := ps.write(model.ServerMessage{Setup: []model.Setup{setup}}); err != nil {
		ps.finish(err)
		return
	}
	updates := ps.GameSession.Runner.Updates()
	for {
		select {
		case <-ps.GameOver:
			return
		case snap, ok := <-updates:
			if !ok {
				ps.goodbye()
				ps.finish(errRunnerStopped)
				return
			}
			mes := model.ServerMessage{States: []model.Snapshot{snap}}
		drain:
			for {
				select {
				case more, ok := <-updates:
					if !ok {
						break drain
					}
					mes.States = append(mes.States, more)
				default:
					break drain
				}
			}
			if err := ps.write(mes); err != nil {
				ps.finish(err)
				return
			}
		}
	}
}

func (ps *PlayerSession) write(mes model.ServerMessage) error {
	if err := ps.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return fmt.Errorf("next writer: %w", err)
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		w.Close()
		return fmt.Errorf("encode server message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flush server message: %w", err)
	}
	ps.DebugOutMessages++
	return nil
}

func (ps *PlayerSession) goodbye() {
	err := ps.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
		time.Now().Add(writeWait))
	if err != nil {
		log.Debugf("PlayerSession %s goodbye: %v", ps.Id, err)
	}
}
