package cards

import (
	"fmt"
	"strings"
)

// Suit represents a card suit, spelled the way it goes on the wire
type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

// Suits lists the four suits in deck-building order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Value represents a card value
type Value string

const (
	Two   Value = "2"
	Three Value = "3"
	Four  Value = "4"
	Five  Value = "5"
	Six   Value = "6"
	Seven Value = "7"
	Eight Value = "8"
	Nine  Value = "9"
	Ten   Value = "10"
	Jack  Value = "J"
	Queen Value = "Q"
	King  Value = "K"
	Ace   Value = "A"
)

// Values lists the thirteen values in deck-building order
var Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card
type Card struct {
	Value Value `json:"value"`
	Suit  Suit  `json:"suit"`
}

// String returns the canonical wire encoding of a card, e.g. "A Spades" or "10 Hearts"
func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Value, c.Suit)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}

// CardFromString parses the wire encoding produced by Card.String
// e.g., "A Spades" -> Card{Value: Ace, Suit: Spades}
func CardFromString(s string) (Card, error) {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("invalid card encoding: %q", s)
	}

	var value Value
	switch parts[0] {
	case "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A":
		value = Value(parts[0])
	default:
		return Card{}, fmt.Errorf("invalid card value: %q", parts[0])
	}

	var suit Suit
	switch parts[1] {
	case "Hearts":
		suit = Hearts
	case "Diamonds":
		suit = Diamonds
	case "Clubs":
		suit = Clubs
	case "Spades":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", parts[1])
	}

	return Card{Value: value, Suit: suit}, nil
}

// Strings renders a run of cards in wire form
func Strings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
