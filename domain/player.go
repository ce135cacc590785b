package domain

import "github.com/cardroom/holdem/cards"

// StartingChips is the stack every player sits down with
const StartingChips = 1000

// Player represents a player seated at the table
type Player struct {
	ID     string
	Name   string
	Chips  int
	Hand   []cards.Card
	Folded bool
}

// NewPlayer creates a new player with the given connection-scoped ID and name
func NewPlayer(id string, name string) Player {
	return Player{
		ID:     id,
		Name:   name,
		Chips:  StartingChips,
		Hand:   make([]cards.Card, 0, 2),
		Folded: false,
	}
}

// ResetForNewHand clears the player's per-hand state
func (p *Player) ResetForNewHand() {
	p.Hand = p.Hand[:0]
	p.Folded = false
}
