package events

import (
	"sync"
	"time"

	"hotelreserve/internal/domain"

	"github.com/gorilla/websocket"
)

// BookingEventMessage is the wire envelope pushed to every connected
// desk dashboard.
type BookingEventMessage struct {
	Type          string               `json:"type"`
	GuestDocument string               `json:"guest_document"`
	RoomNumber    int                  `json:"room_number"`
	Status        domain.BookingStatus `json:"status"`
	At            time.Time            `json:"at"`
}

// Hub fans booking lifecycle events out to all websocket subscribers.
// There is no per-user addressing: every staff dashboard sees every
// event.
type Hub struct {
	mutex       sync.RWMutex
	connections map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[conn] = true
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

// BookingEvent implements the reservation event sink. A write failure
// drops the subscriber.
func (h *Hub) BookingEvent(event string, b *domain.Booking) {
	msg := BookingEventMessage{
		Type:          event,
		GuestDocument: b.GuestDocument,
		RoomNumber:    b.RoomNumber,
		Status:        b.Status,
		At:            time.Now().UTC(),
	}
	h.broadcast(msg)
}

func (h *Hub) broadcast(msg any) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
