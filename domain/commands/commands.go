package commands

// Command is an inbound client message. Wire names follow the original
// socket protocol.
type Command interface {
	Name() string
}

type JoinGame struct {
	PlayerName string `json:"name"`
}

func (j JoinGame) Name() string { return "join_game" }

type StartGame struct{}

func (s StartGame) Name() string { return "start_game" }

type PlaceBet struct {
	Amount int `json:"amount"`
}

func (p PlaceBet) Name() string { return "place_bet" }

type Fold struct{}

func (f Fold) Name() string { return "fold" }

type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

func (c ChatMessage) Name() string { return "chat_message" }
