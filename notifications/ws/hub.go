package ws

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/websocket/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
)

// Conn is the subset of the websocket connection the hub writes to. The
// concrete *websocket.Conn satisfies it; tests substitute a fake.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Connection wraps a socket with its owner metadata. The websocket allows a
// single concurrent writer, so every outbound frame goes through wmu.
type Connection struct {
	conn     Conn
	userID   uuid.UUID
	wmu      sync.Mutex
	lastSeen atomic.Int64 // unix nanoseconds
}

// Touch refreshes the liveness timestamp; the read loop calls this on every
// inbound frame and pong.
func (c *Connection) Touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func (c *Connection) idle() time.Duration {
	return time.Since(time.Unix(0, c.lastSeen.Load()))
}

func (c *Connection) writeJSON(v interface{}) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *Connection) ping(deadline time.Time) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, []byte{}, deadline)
}

// Hub tracks one or more live sockets per user and fans events out to them.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]map[*Connection]struct{}
	done        chan struct{}
	closeOnce   sync.Once
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]map[*Connection]struct{}),
		done:        make(chan struct{}),
	}
}

// Add registers a socket for a user. Multiple tabs mean multiple connections
// under the same user.
func (h *Hub) Add(userID uuid.UUID, conn Conn) *Connection {
	c := &Connection{conn: conn, userID: userID}
	c.Touch()

	h.mu.Lock()
	if _, ok := h.connections[userID]; !ok {
		h.connections[userID] = make(map[*Connection]struct{})
	}
	h.connections[userID][c] = struct{}{}
	total := len(h.connections[userID])
	h.mu.Unlock()

	log.Info("ws connected: user=%s connections=%d", userID, total)
	return c
}

// Remove closes and unregisters a connection
func (h *Hub) Remove(c *Connection) {
	h.mu.Lock()
	if conns, ok := h.connections[c.userID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.connections, c.userID)
		}
	}
	h.mu.Unlock()

	_ = c.conn.Close()
	log.Info("ws disconnected: user=%s", c.userID)
}

// Send delivers a JSON event to every live socket of one user. Dead sockets
// are dropped on write failure.
func (h *Hub) Send(userID uuid.UUID, event interface{}) {
	h.mu.RLock()
	stale := h.write(h.connections[userID], event)
	h.mu.RUnlock()

	for _, c := range stale {
		h.Remove(c)
	}
}

// Broadcast delivers a JSON event to every connected user
func (h *Hub) Broadcast(event interface{}) {
	h.mu.RLock()
	var stale []*Connection
	for _, conns := range h.connections {
		stale = append(stale, h.write(conns, event)...)
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.Remove(c)
	}
}

// ConnectionCount reports the number of live sockets for a user
func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[userID])
}

// Heartbeat pings all sockets on the interval and drops the ones that went
// quiet for more than two intervals. Blocks until Close.
func (h *Hub) Heartbeat(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.sweep(interval)
		}
	}
}

// Close stops the heartbeat loop and closes every socket
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })

	h.mu.Lock()
	for _, conns := range h.connections {
		for c := range conns {
			_ = c.conn.Close()
		}
	}
	h.connections = make(map[uuid.UUID]map[*Connection]struct{})
	h.mu.Unlock()
}

func (h *Hub) sweep(interval time.Duration) {
	h.mu.RLock()
	var stale []*Connection
	deadline := time.Now().Add(time.Second)
	for _, conns := range h.connections {
		for c := range conns {
			if c.idle() > 2*interval {
				stale = append(stale, c)
				continue
			}
			_ = c.ping(deadline)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.Remove(c)
	}
}

// write sends under the caller's read lock and returns the failed connections
func (h *Hub) write(conns map[*Connection]struct{}, event interface{}) []*Connection {
	var stale []*Connection
	for c := range conns {
		if err := c.writeJSON(event); err != nil {
			log.Warn("ws send to %s failed: %v", c.userID, err)
			stale = append(stale, c)
		}
	}
	return stale
}
