package events

// EventHandler receives domain events as they are emitted. Handlers run on the
// goroutine performing the mutation and must not block.
type EventHandler func(event Event)

type Event interface {
	Name() string
}

// PlayerSnapshot is the broadcast view of one seated player. Hole cards go out
// in the canonical "<rank> <suit>" wire form.
type PlayerSnapshot struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Chips  int      `json:"chips"`
	Hand   []string `json:"hand"`
	Folded bool     `json:"folded"`
}

// TableSnapshot is the full table state pushed to every client after each
// accepted mutation. It is the identical shared record for all recipients,
// other players' hole cards included.
type TableSnapshot struct {
	Players        []PlayerSnapshot `json:"players"`
	CommunityCards []string         `json:"communityCards"`
	Pot            int              `json:"pot"`
	Stage          string           `json:"stage"`
	CurrentTurn    string           `json:"currentTurn,omitempty"`
	CurrentPlayer  *PlayerSnapshot  `json:"currentPlayer,omitempty"`
}

type PlayerJoined struct {
	PlayerID   string
	PlayerName string
	State      TableSnapshot
}

func (p PlayerJoined) Name() string { return "PLAYER_JOINED" }

type PlayerLeft struct {
	PlayerID string
	State    TableSnapshot
}

func (p PlayerLeft) Name() string { return "PLAYER_LEFT" }

type HandStarted struct {
	Players []string
	State   TableSnapshot
}

func (h HandStarted) Name() string { return "HAND_STARTED" }

type BetPlaced struct {
	PlayerID string
	Amount   int
	State    TableSnapshot
}

func (b BetPlaced) Name() string { return "BET_PLACED" }

type PlayerFolded struct {
	PlayerID string
	State    TableSnapshot
}

func (p PlayerFolded) Name() string { return "PLAYER_FOLDED" }

type HandEnded struct {
	WinnerID string
	Winnings int
	State    TableSnapshot
}

func (h HandEnded) Name() string { return "HAND_ENDED" }
