package services

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"campusdesk/internal/shared/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 256
)

// Client is one websocket connection. The hub writes into send; the
// write pump drains it onto the wire.
type Client struct {
	conn   *websocket.Conn
	send   chan []byte
	userID uint
	groups map[string]bool
	closed atomic.Bool
	logger logger.Interface
}

func NewClient(conn *websocket.Conn, userID uint, logger logger.Interface) *Client {
	return &Client{
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
		groups: make(map[string]bool),
		logger: logger,
	}
}

func (c *Client) UserID() uint { return c.userID }

// TrySend queues data without blocking. Returns false when the client
// is closed or its buffer is full.
func (c *Client) TrySend(data []byte) (sent bool) {
	if c.closed.Load() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			sent = false
		}
	}()

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Close marks the client closed and closes the send channel. Safe to
// call more than once.
func (c *Client) Close() {
	if c.closed.CompareAndSwap(false, true) {
		close(c.send)
	}
}

// ReadPump consumes inbound frames until the connection drops, passing
// each text message to handle. It must run in its own goroutine; onClose
// fires exactly once when the pump exits.
func (c *Client) ReadPump(handle func(raw []byte), onClose func()) {
	defer func() {
		onClose()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warnw("websocket read failed", "user_id", c.userID, "error", err)
			}
			return
		}
		if handle != nil {
			handle(raw)
		}
	}
}

// WritePump drains the send channel onto the wire and keeps the
// connection alive with pings. It must run in its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) trackGroup(group string) {
	c.groups[group] = true
}
