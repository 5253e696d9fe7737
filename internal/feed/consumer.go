package feed

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event is what subscribers receive: the routing key (booking.created,
// booking.updated) plus the booking row as published.
type Event struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// BookingFeed bridges the broker to the websocket hub.
type BookingFeed struct {
	hub *Hub
}

func NewBookingFeed(hub *Hub) *BookingFeed {
	return &BookingFeed{hub: hub}
}

// Start consumes deliveries until the channel closes.
func (f *BookingFeed) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			f.handleMessage(msg)
		}
		log.Println("[Feed] channel closed, stopping consumer")
	}()
}

func (f *BookingFeed) handleMessage(msg amqp.Delivery) {
	if !json.Valid(msg.Body) {
		log.Printf("[Feed] dropping non-JSON message on %s", msg.RoutingKey)
		msg.Nack(false, false)
		return
	}

	out, err := json.Marshal(Event{Event: msg.RoutingKey, Payload: msg.Body})
	if err != nil {
		log.Printf("[Feed] failed to marshal event: %v", err)
		msg.Nack(false, false)
		return
	}

	f.hub.Broadcast(out)
	msg.Ack(false)
}
