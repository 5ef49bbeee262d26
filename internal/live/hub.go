// Package live pushes the animated counters to websocket subscribers.
package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"woz/internal/animator"
	"woz/internal/domain"
	"woz/internal/render"
)

const (
	EventStats     = "stats"
	EventAggregate = "aggregate"
	EventRegion    = "region"
	EventDroppers  = "droppers"

	sendBuffer   = 32
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
	pongTimeout  = 60 * time.Second
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type AggregateData struct {
	Total int          `json:"total"`
	Label string       `json:"label"`
	Trend domain.Trend `json:"trend"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans counter events out to connected clients. A client whose buffer
// is full is disconnected. Hub implements animator.Display.
type Hub struct {
	logger *zap.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Attach starts serving conn; first, when not nil, is sent before any
// broadcast. Attach returns once the client is registered.
func (h *Hub) Attach(conn *websocket.Conn, first *Event) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if first != nil {
		if msg, err := json.Marshal(first); err == nil {
			c.send <- msg
		}
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) Broadcast(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("encoding live event failed", zap.String("type", event.Type), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("dropping slow live client")
			h.removeLocked(c)
		}
	}
}

func (h *Hub) Droppers(updates []animator.DroppersUpdate) {
	h.Broadcast(Event{Type: EventDroppers, Data: updates})
}

func (h *Hub) Aggregate(total int, trend domain.Trend) {
	h.Broadcast(Event{Type: EventAggregate, Data: AggregateData{
		Total: total,
		Label: render.FormatCount(total),
		Trend: trend,
	}})
}

func (h *Hub) Region(region domain.RegionCount) {
	h.Broadcast(Event{Type: EventRegion, Data: region})
}

// Close disconnects every client; later Attach calls close their conn.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.logger.Debug("live write failed", zap.Error(err))
				h.remove(c)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

// readPump discards client messages and detects disconnects.
func (h *Hub) readPump(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
