package socket

import (
	"sync"

	"ehsaas_server/logger"
)

// Conn is a live connection the hub can address. socketio.Conn satisfies it.
type Conn interface {
	ID() string
	Emit(event string, args ...interface{})
}

// Hub tracks which live connections are joined to which rooms and fans
// messages out to them. Each room has its own lock, so membership changes
// and broadcasts on one room never stall another.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

type room struct {
	mu      sync.Mutex
	members map[string]Conn
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]*room)}
}

func (h *Hub) room(id string, create bool) *room {
	h.mu.RLock()
	r := h.rooms[id]
	h.mu.RUnlock()
	if r != nil || !create {
		return r
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if r = h.rooms[id]; r == nil {
		r = &room{members: make(map[string]Conn)}
		h.rooms[id] = r
	}
	return r
}

// Join registers the connection under the room. Idempotent. Join itself is
// not an authorization point; consent is enforced on history and send.
func (h *Hub) Join(roomID string, c Conn) {
	r := h.room(roomID, true)
	r.mu.Lock()
	r.members[c.ID()] = c
	r.mu.Unlock()
	logger.Debug("connection joined room", "conn", c.ID(), "room", roomID)
}

// Leave removes the connection from one room.
func (h *Hub) Leave(roomID string, c Conn) {
	r := h.room(roomID, false)
	if r == nil {
		return
	}
	r.mu.Lock()
	delete(r.members, c.ID())
	r.mu.Unlock()
}

// Drop removes the connection from every room. Called on disconnect so a
// dead connection is no longer targeted by future broadcasts.
func (h *Hub) Drop(c Conn) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, r := range h.rooms {
		r.mu.Lock()
		delete(r.members, c.ID())
		r.mu.Unlock()
	}
}

// MemberCount reports how many connections are joined to the room.
func (h *Hub) MemberCount(roomID string) int {
	r := h.room(roomID, false)
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Broadcast emits the event to every connection currently joined to the
// room, the sender's own connections included. A connection that fails mid
// emit is logged and removed from the room; delivery to the remaining
// members continues. Live delivery is at-most-once; durable history covers
// reconnects.
func (h *Hub) Broadcast(roomID, event string, payload interface{}) {
	r := h.room(roomID, false)
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.members {
		if !safeEmit(c, event, payload) {
			logger.Warn("dropping dead connection", "conn", id, "room", roomID)
			delete(r.members, id)
		}
	}
}

// safeEmit guards against transports that panic when the peer is gone.
func safeEmit(c Conn, event string, payload interface{}) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	c.Emit(event, payload)
	return true
}
