package events_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroom/holdem/domain/events"
	"github.com/cardroom/holdem/server/connection"
	serverevents "github.com/cardroom/holdem/server/events"
)

func newClient(id string) *connection.Client {
	return &connection.Client{
		ID:   id,
		Send: make(chan []byte, 256),
	}
}

func receive(t *testing.T, client *connection.Client) serverevents.MessageEnvelope {
	t.Helper()

	var env serverevents.MessageEnvelope
	select {
	case raw := <-client.Send:
		require.NoError(t, json.Unmarshal(raw, &env))
	default:
		t.Fatalf("client %s received no message", client.ID)
	}
	return env
}

func assertNoMessage(t *testing.T, client *connection.Client) {
	t.Helper()

	select {
	case raw := <-client.Send:
		t.Fatalf("client %s received unexpected message: %s", client.ID, raw)
	default:
	}
}

func TestHandleEventBroadcastsState(t *testing.T) {
	connMgr := connection.NewManager()
	c1, c2 := newClient("c1"), newClient("c2")
	connMgr.RegisterClient(c1)
	connMgr.RegisterClient(c2)

	dispatcher := serverevents.NewDispatcher(connMgr, false)

	dispatcher.HandleEvent(events.BetPlaced{
		PlayerID: "c1",
		Amount:   100,
		State: events.TableSnapshot{
			Players: []events.PlayerSnapshot{{ID: "c1", Name: "Alice", Chips: 900}},
			Pot:     100,
			Stage:   "pre_flop",
		},
	})

	for _, client := range []*connection.Client{c1, c2} {
		env := receive(t, client)
		assert.Equal(t, serverevents.MessageGameState, env.Name)

		var state events.TableSnapshot
		require.NoError(t, json.Unmarshal(env.Payload, &state))
		assert.Equal(t, 100, state.Pot)
		assert.Equal(t, "pre_flop", state.Stage)
		require.Len(t, state.Players, 1)
		assert.Equal(t, "Alice", state.Players[0].Name)
	}
}

func TestRelayChat(t *testing.T) {
	connMgr := connection.NewManager()
	c1, c2 := newClient("c1"), newClient("c2")
	connMgr.RegisterClient(c1)
	connMgr.RegisterClient(c2)

	dispatcher := serverevents.NewDispatcher(connMgr, false)
	dispatcher.RelayChat("Alice", "hello table")

	for _, client := range []*connection.Client{c1, c2} {
		env := receive(t, client)
		assert.Equal(t, serverevents.MessageChat, env.Name)

		var line string
		require.NoError(t, json.Unmarshal(env.Payload, &line))
		assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] Alice: hello table$`, line)
	}
}

func TestNotifyErrorIsUnicast(t *testing.T) {
	connMgr := connection.NewManager()
	c1, c2 := newClient("c1"), newClient("c2")
	connMgr.RegisterClient(c1)
	connMgr.RegisterClient(c2)

	dispatcher := serverevents.NewDispatcher(connMgr, false)
	dispatcher.NotifyError("c1", "not enough chips")

	env := receive(t, c1)
	assert.Equal(t, serverevents.MessageError, env.Name)

	var payload serverevents.ErrorPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "not enough chips", payload.Message)

	assertNoMessage(t, c2)
}

func TestSlowClientDoesNotBlockBroadcast(t *testing.T) {
	connMgr := connection.NewManager()
	slow := &connection.Client{ID: "slow", Send: make(chan []byte)} // no buffer, no reader
	fast := newClient("fast")
	connMgr.RegisterClient(slow)
	connMgr.RegisterClient(fast)

	dispatcher := serverevents.NewDispatcher(connMgr, false)
	dispatcher.HandleEvent(events.PlayerJoined{
		PlayerID: "fast",
		State:    events.TableSnapshot{Stage: "waiting"},
	})

	// The slow client's message is dropped; the fast client still gets it
	env := receive(t, fast)
	assert.Equal(t, serverevents.MessageGameState, env.Name)
}
