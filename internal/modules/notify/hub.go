// Package notify pushes booking lifecycle events to connected staff
// dashboards over WebSocket. Delivery is best effort: a slow or dead
// client is skipped, never blocks a booking operation.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hotelbooking/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

const (
	EventBookingCreated       = "booking_created"
	EventBookingStatusChanged = "booking_status_changed"
)

// Event is a real-time message pushed to staff clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type connection struct {
	id     string
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub manages all active staff connections.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.id] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.id]; ok && existing == c {
		delete(h.connections, c.id)
		close(c.send)
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections {
		select {
		case c.send <- data:
		default:
			// client too slow, skip
		}
	}
}

// BookingCreated implements the booking event sink.
func (h *Hub) BookingCreated(b *domain.Booking) {
	h.Broadcast(&Event{
		Type: EventBookingCreated,
		Payload: map[string]any{
			"booking_id":        b.ID,
			"booking_reference": b.BookingReference,
			"room_id":           b.RoomID,
			"check_in_date":     b.CheckInDate.Format("2006-01-02"),
			"check_out_date":    b.CheckOutDate.Format("2006-01-02"),
			"booking_type":      b.BookingType,
			"total_cents":       b.TotalCents,
		},
	})
}

// BookingStatusChanged implements the booking event sink.
func (h *Hub) BookingStatusChanged(bookingID int64, reference string, from, to domain.BookingStatus) {
	h.Broadcast(&Event{
		Type: EventBookingStatusChanged,
		Payload: map[string]any{
			"booking_id":        bookingID,
			"booking_reference": reference,
			"from":              from,
			"to":                to,
		},
	})
}
