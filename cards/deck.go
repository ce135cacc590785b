package cards

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned when dealing from a deck with no cards left.
// Unreachable during normal play (52 cards cover any practical seat count),
// but the contract is still defined.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered set of cards consumed from the top (the end of the slice).
// A deck is single-use: build and shuffle a fresh one per hand.
type Deck struct {
	cards []Card
}

// NewDeck52 creates a standard deck of 52 cards in deterministic order,
// suit-major then value-major
func NewDeck52() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, value := range Values {
			cards = append(cards, Card{Value: value, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the deck in place with a Fisher-Yates walk, every
// permutation equally likely
func (d *Deck) Shuffle() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := len(d.cards) - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card of the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining reports how many cards are left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards exposes the current deck order, top card last
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
