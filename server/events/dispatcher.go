package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cardroom/holdem/domain/events"
	"github.com/cardroom/holdem/server/connection"
	"github.com/sanity-io/litter"
)

// Wire message names understood by clients.
const (
	MessageGameState = "game_state"
	MessageChat      = "chat_message"
	MessageError     = "error"
)

// MessageEnvelope wraps an outbound message with its name for client consumption
type MessageEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorPayload carries a human-readable rejection back to the acting client
type ErrorPayload struct {
	Message string `json:"message"`
}

// Dispatcher is the broadcast gateway: it turns domain events into game_state
// broadcasts and relays chat and per-client errors
type Dispatcher struct {
	connMgr *connection.Manager
	debug   bool
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager, debug bool) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
		debug:   debug,
	}
}

// HandleEvent processes domain events and broadcasts the snapshot they carry.
// Registered as the table's event handler.
func (d *Dispatcher) HandleEvent(event events.Event) {
	log.Println("Dispatching event:", event.Name())
	if d.debug {
		litter.D(event)
	}

	state, ok := events.ExtractState(event)
	if !ok {
		log.Println("Event carries no state, skipping broadcast:", event.Name())
		return
	}

	data, err := envelope(MessageGameState, state)
	if err != nil {
		log.Println("Failed to marshal game state:", err)
		return
	}

	d.connMgr.Broadcast(data)
}

// RelayChat stamps a chat line with server time and delivers it to everyone,
// verbatim and unvalidated. Chat never touches the table.
func (d *Dispatcher) RelayChat(sender, text string) {
	line := fmt.Sprintf("[%s] %s: %s", time.Now().Format("15:04:05"), sender, text)

	data, err := envelope(MessageChat, line)
	if err != nil {
		log.Println("Failed to marshal chat message:", err)
		return
	}

	d.connMgr.Broadcast(data)
}

// NotifyError delivers a rejection to exactly the client whose action caused it
func (d *Dispatcher) NotifyError(clientID string, message string) {
	data, err := envelope(MessageError, ErrorPayload{Message: message})
	if err != nil {
		log.Println("Failed to marshal error message:", err)
		return
	}

	d.connMgr.SendToClient(clientID, data)
}

func envelope(name string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(MessageEnvelope{Name: name, Payload: raw})
}
