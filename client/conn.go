package client

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/model"
)

const incomingQueue = 32

// Connection is one websocket game session seen from the player side.
type Connection struct {
	conn     *websocket.Conn
	Incoming chan model.ServerMessage
	done     chan struct{}

	mu  sync.Mutex
	err error
}

// Dial opens ws://addr/play/variant. A refused handshake reports the
// server's explanation.
func Dial(addr, variant string) (*Connection, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/play/" + url.PathEscape(variant)}
	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		if resp != nil && resp.Body != nil {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("dial %s: %d %s: %w", u.String(), resp.StatusCode, strings.TrimSpace(string(body)), err)
		}
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}
	c := &Connection{
		conn:     conn,
		Incoming: make(chan model.ServerMessage, incomingQueue),
		done:     make(chan struct{}),
	}
	go c.loopRead()
	return c, nil
}

func (c *Connection) loopRead() {
	defer close(c.done)
	defer close(c.Incoming)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.fail(err)
			return
		}
		var mes model.ServerMessage
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&mes); err != nil {
			c.fail(fmt.Errorf("decode server message: %w", err))
			return
		}
		c.Incoming <- mes
	}
}

func (c *Connection) fail(err error) {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		err = nil
	}
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	if err != nil {
		log.Warnf("connection: %v", err)
	}
}

// Send writes one action. It must not be called concurrently.
func (c *Connection) Send(a model.Action) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(model.ClientMessage{Action: a}); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, buf.Bytes())
}

func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Err is the reason the connection ended, nil for a normal close.
func (c *Connection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Connection) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
	if err := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		log.Debugf("connection close: %v", err)
	}
	return c.conn.Close()
}
