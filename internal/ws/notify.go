package ws

import (
	"encoding/json"
	"time"
)

// Event is the envelope every broadcast uses.
type Event struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the event surface the usecases depend on.
// Engine lifecycle events ("engine.ready", "catalogue.reloaded") go out to
// every connected client.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) Broadcast(event string, payload any) {
	if n == nil || n.hub == nil || event == "" {
		return
	}

	b, err := json.Marshal(Event{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
