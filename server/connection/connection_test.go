package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newClient(id string, buffer int) *Client {
	return &Client{ID: id, Send: make(chan []byte, buffer)}
}

func TestRegisterUnregister(t *testing.T) {
	m := NewManager()
	client := newClient("c1", 1)

	m.RegisterClient(client)
	assert.Equal(t, 1, m.ClientCount())

	m.UnregisterClient(client)
	assert.Equal(t, 0, m.ClientCount())

	// Unregister closes the send channel
	_, open := <-client.Send
	assert.False(t, open)

	// Unregistering twice is harmless
	m.UnregisterClient(client)
}

func TestSendToClient(t *testing.T) {
	m := NewManager()
	client := newClient("c1", 1)
	m.RegisterClient(client)

	assert.True(t, m.SendToClient("c1", []byte("hi")))
	assert.Equal(t, []byte("hi"), <-client.Send)

	assert.False(t, m.SendToClient("nobody", []byte("hi")))
}

func TestSendToClientFullBufferDrops(t *testing.T) {
	m := NewManager()
	client := newClient("c1", 1)
	m.RegisterClient(client)

	assert.True(t, m.SendToClient("c1", []byte("one")))
	assert.False(t, m.SendToClient("c1", []byte("two")), "full buffer drops instead of blocking")
	assert.Equal(t, []byte("one"), <-client.Send)
}

func TestBroadcast(t *testing.T) {
	m := NewManager()
	c1 := newClient("c1", 1)
	c2 := newClient("c2", 1)
	m.RegisterClient(c1)
	m.RegisterClient(c2)

	m.Broadcast([]byte("state"))

	assert.Equal(t, []byte("state"), <-c1.Send)
	assert.Equal(t, []byte("state"), <-c2.Send)
}
