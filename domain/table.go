package domain

import (
	"sync"

	"github.com/cardroom/holdem/cards"
	"github.com/cardroom/holdem/domain/events"
)

// Stage is the coarse phase label of the current hand
type Stage string

const (
	StageWaiting Stage = "waiting"
	StagePreFlop Stage = "pre_flop"
	StageEnded   Stage = "ended"
)

// HoleCardCount and CommunityCardCount are fixed by the dealing scheme: two
// hole cards per player and three community cards up front, no later streets.
const (
	HoleCardCount      = 2
	CommunityCardCount = 3
)

// Table is the single shared game state. Every mutation runs under the table
// mutex and, on success, emits exactly one event carrying a snapshot taken
// inside the critical section, so handlers never observe a partial update.
//
// Handlers are registered before the table starts taking actions and are
// invoked after the mutex is released; they must not block.
type Table struct {
	mu sync.Mutex

	Players         []Player
	CommunityCards  []cards.Card
	Pot             int
	Stage           Stage
	CurrentTurnID   string // identity expected to act, "" when no turn is set
	CurrentPlayerID string // last bettor, shown to observers as the reference player

	// events
	Events        []events.Event
	eventHandlers []events.EventHandler
}

// NewTable creates an empty table waiting for players
func NewTable() *Table {
	return &Table{
		Players:        []Player{},
		CommunityCards: []cards.Card{},
		Stage:          StageWaiting,
		Events:         []events.Event{},
		eventHandlers:  []events.EventHandler{},
	}
}

// AddEventHandler registers a callback invoked for every emitted event
func (t *Table) AddEventHandler(handler events.EventHandler) {
	t.eventHandlers = append(t.eventHandlers, handler)
}

// Join seats a new player with the starting stack at the end of the rotation
func (t *Table) Join(playerID string, name string) error {
	t.mu.Lock()

	for _, p := range t.Players {
		if p.Name == name {
			t.mu.Unlock()
			return ErrDuplicateName
		}
	}

	t.Players = append(t.Players, NewPlayer(playerID, name))

	ev := events.PlayerJoined{
		PlayerID:   playerID,
		PlayerName: name,
		State:      t.snapshotLocked(),
	}
	t.Events = append(t.Events, ev)
	t.mu.Unlock()

	t.notify(ev)
	return nil
}

// Leave removes the player matching the identity, if seated. The turn pointer
// is not reassigned; snapshot resolution guards the dangling reference.
func (t *Table) Leave(playerID string) {
	t.mu.Lock()

	idx := t.playerIndexLocked(playerID)
	if idx == -1 {
		t.mu.Unlock()
		return
	}

	t.Players = append(t.Players[:idx], t.Players[idx+1:]...)

	ev := events.PlayerLeft{
		PlayerID: playerID,
		State:    t.snapshotLocked(),
	}
	t.Events = append(t.Events, ev)
	t.mu.Unlock()

	t.notify(ev)
}

// StartGame begins a new hand: fresh shuffled deck, two hole cards per player,
// three community cards, pot reset, turn to the first player in join order
func (t *Table) StartGame() error {
	t.mu.Lock()

	if len(t.Players) < 2 {
		t.mu.Unlock()
		return ErrNotEnoughPlayers
	}

	deck := cards.NewDeck52()
	deck.Shuffle()

	// Deal into locals first so a deck exhaustion leaves the table untouched
	hands := make([][]cards.Card, len(t.Players))
	for i := range t.Players {
		for n := 0; n < HoleCardCount; n++ {
			card, err := deck.Deal()
			if err != nil {
				t.mu.Unlock()
				return err
			}
			hands[i] = append(hands[i], card)
		}
	}

	community := make([]cards.Card, 0, CommunityCardCount)
	for n := 0; n < CommunityCardCount; n++ {
		card, err := deck.Deal()
		if err != nil {
			t.mu.Unlock()
			return err
		}
		community = append(community, card)
	}

	t.Pot = 0
	t.CommunityCards = community
	t.Stage = StagePreFlop
	t.CurrentTurnID = t.Players[0].ID
	t.CurrentPlayerID = ""

	playerIDs := make([]string, len(t.Players))
	for i := range t.Players {
		t.Players[i].ResetForNewHand()
		t.Players[i].Hand = hands[i]
		playerIDs[i] = t.Players[i].ID
	}

	ev := events.HandStarted{
		Players: playerIDs,
		State:   t.snapshotLocked(),
	}
	t.Events = append(t.Events, ev)
	t.mu.Unlock()

	t.notify(ev)
	return nil
}

// PlaceBet moves chips from the acting player into the pot and hands the turn
// to the next player in join order. Any seated, non-folded player may act:
// the turn pointer is advisory and folded seats are not skipped here.
func (t *Table) PlaceBet(playerID string, amount int) error {
	t.mu.Lock()

	idx := t.playerIndexLocked(playerID)
	if idx == -1 || t.Players[idx].Folded {
		t.mu.Unlock()
		return nil
	}

	if amount > t.Players[idx].Chips {
		t.mu.Unlock()
		return ErrInsufficientChips
	}

	t.Players[idx].Chips -= amount
	t.Pot += amount
	t.CurrentTurnID = t.Players[(idx+1)%len(t.Players)].ID
	t.CurrentPlayerID = playerID

	ev := events.BetPlaced{
		PlayerID: playerID,
		Amount:   amount,
		State:    t.snapshotLocked(),
	}
	t.Events = append(t.Events, ev)
	t.mu.Unlock()

	t.notify(ev)
	return nil
}

// Fold withdraws the player from the current hand. When a single active player
// remains the hand resolves: the pot goes to that player and the stage ends.
func (t *Table) Fold(playerID string) {
	t.mu.Lock()

	idx := t.playerIndexLocked(playerID)
	if idx == -1 {
		t.mu.Unlock()
		return
	}

	t.Players[idx].Folded = true

	active := 0
	winner := -1
	for i, p := range t.Players {
		if !p.Folded {
			active++
			winner = i
		}
	}

	var ev events.Event
	if active == 1 {
		winnings := t.Pot
		t.Players[winner].Chips += winnings
		t.Pot = 0
		t.Stage = StageEnded
		t.CurrentTurnID = ""
		ev = events.HandEnded{
			WinnerID: t.Players[winner].ID,
			Winnings: winnings,
			State:    t.snapshotLocked(),
		}
	} else {
		t.CurrentTurnID = t.nextActiveLocked(idx)
		ev = events.PlayerFolded{
			PlayerID: playerID,
			State:    t.snapshotLocked(),
		}
	}

	t.Events = append(t.Events, ev)
	t.mu.Unlock()

	t.notify(ev)
}

// Snapshot returns the current broadcast view of the table
func (t *Table) Snapshot() events.TableSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Table) playerIndexLocked(playerID string) int {
	for i, p := range t.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// nextActiveLocked finds the next non-folded seat after idx. The scan is
// bounded at one full rotation and answers "" when every seat is folded,
// rather than looping.
func (t *Table) nextActiveLocked(idx int) string {
	for step := 1; step <= len(t.Players); step++ {
		candidate := t.Players[(idx+step)%len(t.Players)]
		if !candidate.Folded {
			return candidate.ID
		}
	}
	return ""
}

func (t *Table) snapshotLocked() events.TableSnapshot {
	players := make([]events.PlayerSnapshot, len(t.Players))
	for i, p := range t.Players {
		players[i] = events.PlayerSnapshot{
			ID:     p.ID,
			Name:   p.Name,
			Chips:  p.Chips,
			Hand:   cards.Strings(p.Hand),
			Folded: p.Folded,
		}
	}

	snapshot := events.TableSnapshot{
		Players:        players,
		CommunityCards: cards.Strings(t.CommunityCards),
		Pot:            t.Pot,
		Stage:          string(t.Stage),
		CurrentTurn:    t.CurrentTurnID,
	}

	// The reference player may have left since the last bet; report no current
	// player instead of chasing the dangling identity
	if idx := t.playerIndexLocked(t.CurrentPlayerID); idx != -1 {
		snapshot.CurrentPlayer = &players[idx]
	}

	return snapshot
}

// notify runs outside the critical section so handler I/O cannot stall the
// turn logic
func (t *Table) notify(event events.Event) {
	for _, handler := range t.eventHandlers {
		handler(event)
	}
}
