package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"ascii-roguelike/internal/config"
	"ascii-roguelike/internal/render"
	"ascii-roguelike/internal/session"
	"ascii-roguelike/internal/system"

	"github.com/gorilla/websocket"
)

// Inbound message types.
const (
	msgMove   = "move"
	msgAction = "action"
)

// Outbound message types.
const (
	msgFrame = "frame"
	msgError = "error"
	msgBye   = "bye"
)

// Request is a client command.
//
//	{"type":"move","direction":"north"}
//	{"type":"action","action":"descend"}
//	{"type":"wait"}
type Request struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
	Action    string `json:"action,omitempty"`
}

// Response is a server message.
type Response struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Client owns one WebSocket connection and the session it plays.
// Only ReadPump touches the session.
type Client struct {
	ws      *websocket.Conn
	send    chan []byte
	session *session.Session
	logger  *log.Logger
}

// NewClient starts a session for ws and queues its first frame.
func NewClient(ws *websocket.Conn, cfg config.Config, logger *log.Logger) (*Client, error) {
	sess, err := session.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	c := &Client{
		ws:      ws,
		send:    make(chan []byte, 256),
		session: sess,
		logger:  logger,
	}
	c.sendFrame()
	return c, nil
}

// ReadPump reads requests until the connection closes or the player quits.
func (c *Client) ReadPump() {
	defer close(c.send)

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Printf("Error reading message: %v", err)
			}
			return
		}
		if !c.handle(message) {
			return
		}
	}
}

// WritePump drains the send queue to the connection.
func (c *Client) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// handle applies one request and reports whether to keep reading.
func (c *Client) handle(message []byte) bool {
	var req Request
	if err := json.Unmarshal(message, &req); err != nil {
		c.sendError(fmt.Errorf("malformed request: %w", err))
		return true
	}
	action, err := parseRequest(req)
	if err != nil {
		c.sendError(err)
		return true
	}

	out, err := c.session.Apply(action)
	if errors.Is(err, session.ErrEnded) {
		return false
	}
	if err != nil {
		c.sendError(err)
		return true
	}
	if out.Quit {
		c.queue(Response{Type: msgBye})
		return false
	}
	c.sendFrame()
	return true
}

// parseRequest turns a request into a session action.
func parseRequest(req Request) (session.Action, error) {
	switch req.Type {
	case msgMove:
		dir, err := system.ParseDirection(req.Direction)
		if err != nil {
			return session.ActionNone, err
		}
		return session.MoveAction(dir), nil
	case msgAction:
		return session.ParseAction(req.Action)
	default:
		// Bare actions: {"type":"wait"}.
		a, err := session.ParseAction(req.Type)
		if _, move := a.Direction(); err != nil || move {
			return session.ActionNone, fmt.Errorf("unknown request type %q", req.Type)
		}
		return a, nil
	}
}

func (c *Client) sendFrame() {
	c.queue(Response{Type: msgFrame, Payload: render.Snapshot(c.session, render.ThemeFor(c.session.Depth()))})
}

func (c *Client) sendError(err error) {
	c.queue(Response{Type: msgError, Payload: err.Error()})
}

// queue marshals resp onto the send channel, dropping the connection when
// the client cannot keep up.
func (c *Client) queue(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Printf("marshal %s: %v", resp.Type, err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.ws.Close()
	}
}
