package domain

import "errors"

var (
	// ErrDuplicateName rejects a join whose display name is already taken by a
	// seated player
	ErrDuplicateName = errors.New("player name already taken")

	// ErrNotEnoughPlayers rejects starting a hand with fewer than two players
	ErrNotEnoughPlayers = errors.New("need at least 2 players to start")

	// ErrInsufficientChips rejects a bet larger than the acting player's stack
	ErrInsufficientChips = errors.New("not enough chips")

	// ErrUnknownPlayer marks an action from an identity that is not seated.
	// Never surfaced to clients: bet and fold from an unknown identity are
	// silently ignored.
	ErrUnknownPlayer = errors.New("player not found")
)
