package net

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/config"
	"interstellar-defense/internal/session"
)

type HubConfig struct {
	Logger *log.Logger
}

// Hub streams snapshots to every connected client and applies the commands
// they send through the session.
type Hub struct {
	session  *session.Session
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// client wraps a connection; gorilla allows one concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func NewHub(s *session.Session, cfg HubConfig) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Hub{
		session: s,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// Handle upgrades the request, sends the current state and then serves
// commands until the connection drops.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed: %v", err)
		return
	}
	c := &client{conn: conn}
	defer h.drop(c)

	if err := c.writeJSON(stateMessage{Type: "state", Snapshot: h.session.Snapshot()}); err != nil {
		return
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Printf("client %s connected, %d receiving broadcasts", r.RemoteAddr, h.NumClients())

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed message: %v", err)
			continue
		}

		var res result
		err = h.session.Do(func(g *app.Game) error {
			var cmdErr error
			res, cmdErr = apply(g, msg)
			return cmdErr
		})

		var reply any = ackMessage{Type: "ack", Seq: msg.Seq, ID: res.ID, Hits: res.Hits}
		if err != nil {
			reply = rejectMessage{Type: "reject", Seq: msg.Seq, Reason: err.Error()}
		}
		if err := c.writeJSON(reply); err != nil {
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.conn.Close()
}

// Broadcast sends one snapshot to every client. Clients that fail the write
// are disconnected.
func (h *Hub) Broadcast() {
	msg := stateMessage{Type: "state", Snapshot: h.session.Snapshot()}

	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(msg); err != nil {
			h.logger.Printf("broadcast failed, dropping client: %v", err)
			h.drop(c)
		}
	}
}

// Run broadcasts every BroadcastInterval until ctx is done.
func (h *Hub) Run(ctx context.Context) error {
	ticker := time.NewTicker(config.BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.Broadcast()
		}
	}
}

// NumClients reports how many clients receive broadcasts.
func (h *Hub) NumClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
