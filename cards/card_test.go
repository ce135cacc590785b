package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want string
	}{
		{"Ace of Spades", Card{Value: Ace, Suit: Spades}, "A Spades"},
		{"Ten of Hearts", Card{Value: Ten, Suit: Hearts}, "10 Hearts"},
		{"Two of Clubs", Card{Value: Two, Suit: Clubs}, "2 Clubs"},
		{"Queen of Diamonds", Card{Value: Queen, Suit: Diamonds}, "Q Diamonds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.card.String())
		})
	}
}

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{"Ace of Spades", "A Spades", Card{Value: Ace, Suit: Spades}, false},
		{"Ten of Hearts", "10 Hearts", Card{Value: Ten, Suit: Hearts}, false},
		{"King of Clubs", "K Clubs", Card{Value: King, Suit: Clubs}, false},
		{"Seven of Diamonds", "7 Diamonds", Card{Value: Seven, Suit: Diamonds}, false},

		// Invalid inputs
		{"Empty input", "", Card{}, true},
		{"Missing suit", "A", Card{}, true},
		{"Invalid value", "11 Spades", Card{}, true},
		{"Invalid suit", "A Swords", Card{}, true},
		{"Lowercase suit", "A spades", Card{}, true},
		{"Glyph suit", "A ♠", Card{}, true},
		{"Reverse order", "Spades A", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestCardRoundTrip(t *testing.T) {
	for _, c := range NewDeck52().Cards() {
		parsed, err := CardFromString(c.String())
		require.NoError(t, err)
		require.True(t, parsed.Equals(c))
	}
}
