package connection

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a connected player. The client ID doubles as the
// connection-scoped player identity at the table.
type Client struct {
	ID         string
	Conn       *websocket.Conn
	Send       chan []byte
	PlayerName string // set once the client joins the game
}

// Manager handles all client connections
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start begins processing connection events
func (m *Manager) Start() {
	for {
		select {
		case client := <-m.Register:
			m.RegisterClient(client)
		case client := <-m.Unregister:
			m.UnregisterClient(client)
		}
	}
}

// RegisterClient adds a client to the manager
func (m *Manager) RegisterClient(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.clients[client.ID] = client
}

// UnregisterClient removes a client and closes its send channel
func (m *Manager) UnregisterClient(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
	}
}

// SendToClient delivers a message to a single client. The send never blocks:
// a client whose buffer is full drops the message instead of stalling the
// caller.
func (m *Manager) SendToClient(clientID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	client, ok := m.clients[clientID]
	if !ok {
		return false
	}

	select {
	case client.Send <- message:
		return true
	default:
		return false
	}
}

// Broadcast delivers a message to every connected client, skipping clients
// whose buffers are full
func (m *Manager) Broadcast(message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, client := range m.clients {
		select {
		case client.Send <- message:
		default:
		}
	}
}

// ClientCount reports how many clients are connected
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}
