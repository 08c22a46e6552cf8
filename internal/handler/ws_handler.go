package handler

import (
	"net/http"
	"sync"
	"time"

	"forum/internal/events"
	"forum/internal/middleware"
	"forum/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // add origin check in production
	},
}

// EventsHandler streams content lifecycle events (new posts/comments,
// archive operations) to authenticated clients over a websocket. The
// stream is read-only; all mutations go through the REST API.
type EventsHandler struct {
	broker events.Broker

	mu      sync.RWMutex
	clients map[*websocket.Conn]chan events.Event
	started bool
}

func NewEventsHandler(broker events.Broker) *EventsHandler {
	return &EventsHandler{
		broker:  broker,
		clients: make(map[*websocket.Conn]chan events.Event),
	}
}

// Stream upgrades the connection and forwards broker events until the
// client goes away.
// GET /api/ws
func (h *EventsHandler) Stream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.ensureStarted(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event stream unavailable"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}

	send := make(chan events.Event, 32)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	logger.Log.Info("Event stream client connected",
		zap.String("user_id", claims.UserID.String()),
		zap.String("username", claims.Username),
	)

	go h.writePump(conn, send)
	h.readPump(conn)
}

// ensureStarted subscribes to the broker once and fans events out to all
// connected clients.
func (h *EventsHandler) ensureStarted() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return nil
	}

	stream, err := h.broker.Subscribe()
	if err != nil {
		return err
	}
	h.started = true

	go func() {
		for event := range stream {
			h.mu.RLock()
			for _, send := range h.clients {
				select {
				case send <- event:
				default:
					// Slow client; drop the event rather than block the fan-out.
				}
			}
			h.mu.RUnlock()
		}
	}()

	return nil
}

func (h *EventsHandler) writePump(conn *websocket.Conn, send <-chan events.Event) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection so pongs and close frames are processed;
// any inbound payload is ignored.
func (h *EventsHandler) readPump(conn *websocket.Conn) {
	defer h.removeClient(conn)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *EventsHandler) removeClient(conn *websocket.Conn) {
	h.mu.Lock()
	if send, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(send)
	}
	h.mu.Unlock()
	conn.Close()
}
