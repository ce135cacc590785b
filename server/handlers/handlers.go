package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cardroom/holdem/domain"
	"github.com/cardroom/holdem/domain/commands"
	"github.com/cardroom/holdem/server/connection"
	serverevents "github.com/cardroom/holdem/server/events"
)

// CommandRouter routes incoming commands to the appropriate handler
type CommandRouter struct {
	table   *domain.Table
	gateway *serverevents.Dispatcher
}

// NewCommandRouter creates a new command router
func NewCommandRouter(table *domain.Table, gateway *serverevents.Dispatcher) *CommandRouter {
	return &CommandRouter{
		table:   table,
		gateway: gateway,
	}
}

// HandleCommand processes an incoming command message of the form
// {"name": <command>, "payload": {...}}. Domain rejections are reported to
// the acting client only; the returned error is for server logs.
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	// First determine command type
	var baseCmd struct {
		Name    string          `json:"name"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return err
	}

	// Route to appropriate handler based on command type
	switch baseCmd.Name {
	case commands.JoinGame{}.Name():
		var cmd commands.JoinGame
		if err := json.Unmarshal(baseCmd.Payload, &cmd); err != nil {
			return err
		}
		return r.handleJoinGame(client, cmd)

	case commands.StartGame{}.Name():
		return r.handleStartGame(client)

	case commands.PlaceBet{}.Name():
		var cmd commands.PlaceBet
		if err := json.Unmarshal(baseCmd.Payload, &cmd); err != nil {
			return err
		}
		return r.handlePlaceBet(client, cmd)

	case commands.Fold{}.Name():
		return r.handleFold(client)

	case commands.ChatMessage{}.Name():
		var cmd commands.ChatMessage
		if err := json.Unmarshal(baseCmd.Payload, &cmd); err != nil {
			return err
		}
		return r.handleChatMessage(client, cmd)

	default:
		fmt.Println("unknown command type", baseCmd.Name)
		return errors.New("unknown command type")
	}
}

func (r *CommandRouter) handleJoinGame(client *connection.Client, cmd commands.JoinGame) error {
	if err := r.table.Join(client.ID, cmd.PlayerName); err != nil {
		r.gateway.NotifyError(client.ID, err.Error())
		return err
	}

	client.PlayerName = cmd.PlayerName
	return nil
}

func (r *CommandRouter) handleStartGame(client *connection.Client) error {
	if err := r.table.StartGame(); err != nil {
		r.gateway.NotifyError(client.ID, err.Error())
		return err
	}
	return nil
}

func (r *CommandRouter) handlePlaceBet(client *connection.Client, cmd commands.PlaceBet) error {
	if err := r.table.PlaceBet(client.ID, cmd.Amount); err != nil {
		r.gateway.NotifyError(client.ID, err.Error())
		return err
	}
	return nil
}

func (r *CommandRouter) handleFold(client *connection.Client) error {
	r.table.Fold(client.ID)
	return nil
}

func (r *CommandRouter) handleChatMessage(client *connection.Client, cmd commands.ChatMessage) error {
	r.gateway.RelayChat(cmd.Sender, cmd.Text)
	return nil
}
