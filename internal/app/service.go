package app

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"unobot/internal/domain"
)

// Service contains UNO use-cases operating on domain state.
type Service struct {
	rng *rand.Rand

	// HandSize is the number of cards dealt to each player.
	HandSize int
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, HandSize: DefaultHandSize}
}

var (
	ErrNotPlaying      = errors.New("match not in playing phase")
	ErrTooFewPlayers   = errors.New("not enough players to start")
	ErrTooManyPlayers  = errors.New("too many players to start")
	ErrUnknownPlayer   = errors.New("player not found")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrCardNotPlayable = errors.New("card cannot be played on the top card")
	ErrColorRequired   = errors.New("wild card requires a declared color")
	ErrInvalidHandSize = errors.New("hand size out of range")
)

// StartGame initializes a new Game with the provided players in seat order.
// Empty strings mark empty seats and are skipped.
func (s *Service) StartGame(playerIDs []string) (*domain.Game, []Event, error) {
	players := make(map[string]*domain.Player)
	var seats []string
	for i, userID := range playerIDs {
		if userID == "" {
			continue
		}
		players[userID] = &domain.Player{UserID: userID, Seat: i + 1}
		seats = append(seats, userID)
	}

	switch {
	case len(players) < PlayersPerGame:
		return nil, nil, ErrTooFewPlayers
	case len(players) > PlayersPerGame:
		return nil, nil, ErrTooManyPlayers
	}
	if s.HandSize < 1 || s.HandSize*PlayersPerGame >= domain.DeckSize {
		return nil, nil, ErrInvalidHandSize
	}

	game := &domain.Game{
		ID:      uuid.NewString(),
		Phase:   domain.PhasePlaying,
		Players: players,
		Seats:   seats,
		Deck:    domain.ShuffleDeck(domain.NewDeck(), s.rng),
	}

	events := make([]Event, 0, len(seats)+1)
	for _, userID := range seats {
		hand := game.Draw(userID, s.HandSize, s.rng)
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: userID, Hand: domain.CloneHand(hand)},
			Recipients: []string{userID},
		})
	}

	s.flipFirstCard(game)
	game.CurrentTurn = seats[0]

	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:          game.ID,
			Phase:           game.Phase,
			TopCard:         game.TopCard,
			CurrentColor:    game.CurrentColor,
			FirstTurnUserID: game.CurrentTurn,
		},
	})
	return game, events, nil
}

// flipFirstCard turns over the first top card, burying wild cards in the
// discard pile until a colored card shows.
func (s *Service) flipFirstCard(game *domain.Game) {
	for len(game.Deck) > 0 {
		c := game.Deck[len(game.Deck)-1]
		game.Deck = game.Deck[:len(game.Deck)-1]
		if c.IsWildCard() {
			game.Discard = append(game.Discard, c)
			continue
		}
		game.TopCard = c
		game.CurrentColor = c.Color
		return
	}
}

func (s *Service) checkTurn(game *domain.Game, actorUserID string) (*domain.Player, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.Players[actorUserID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if game.CurrentTurn != actorUserID {
		return nil, ErrNotYourTurn
	}
	return pl, nil
}

// PlayCard processes a play action and emits resulting events. declared is
// required for Wild and +4 and ignored otherwise.
func (s *Service) PlayCard(game *domain.Game, actorUserID string, card domain.Card, declared domain.Color) ([]Event, error) {
	pl, err := s.checkTurn(game, actorUserID)
	if err != nil {
		return nil, err
	}
	if !domain.ContainsCard(pl.Hand, card) {
		return nil, ErrCardNotInHand
	}
	if !card.PlayableOn(game.TopCard, game.CurrentColor) {
		return nil, ErrCardNotPlayable
	}
	effect := domain.EffectOf(card)
	if effect.NeedsColor && !declared.IsBase() {
		return nil, ErrColorRequired
	}

	pl.Hand = domain.RemoveCard(pl.Hand, card)
	game.Discard = append(game.Discard, game.TopCard)
	game.TopCard = card
	game.CurrentColor = domain.NextColor(card, game.CurrentColor, declared)
	game.Turns++

	opponent := game.Opponent(actorUserID)
	if len(pl.Hand) == 0 {
		ended := s.end(game, actorUserID, EndReasonWin)
		return []Event{s.playedEvent(game, actorUserID, card, 0), ended}, nil
	}

	if effect.OpponentSkipped {
		game.CurrentTurn = actorUserID
	} else {
		game.CurrentTurn = opponent
	}
	events := []Event{s.playedEvent(game, actorUserID, card, len(pl.Hand))}

	if effect.DrawPenalty > 0 {
		drawn := game.Draw(opponent, effect.DrawPenalty, s.rng)
		events = append(events, Event{
			Kind: EventCardsDrawn,
			Payload: CardsDrawnPayload{
				UserID:         opponent,
				Cards:          drawn,
				Penalty:        true,
				NextTurnUserID: game.CurrentTurn,
			},
		})
	}
	return events, nil
}

func (s *Service) playedEvent(game *domain.Game, actorUserID string, card domain.Card, left int) Event {
	return Event{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			UserID:         actorUserID,
			Card:           card,
			CurrentColor:   game.CurrentColor,
			CardsLeft:      left,
			NextTurnUserID: game.CurrentTurn,
		},
	}
}

// DrawResult reports the outcome of a voluntary draw.
type DrawResult struct {
	Card domain.Card
	// Playable means the actor keeps the turn and may play the drawn card.
	Playable bool
	// Exhausted means nothing was left to draw and the game ended as a draw.
	Exhausted bool
}

// DrawCard draws one card for the actor. A playable card keeps the turn with
// the actor; otherwise the turn passes. When the deck and the discards are both
// empty the game ends without a winner.
func (s *Service) DrawCard(game *domain.Game, actorUserID string) (DrawResult, []Event, error) {
	if _, err := s.checkTurn(game, actorUserID); err != nil {
		return DrawResult{}, nil, err
	}

	drawn := game.Draw(actorUserID, 1, s.rng)
	if len(drawn) == 0 {
		return DrawResult{Exhausted: true}, []Event{s.end(game, "", EndReasonDeckExhausted)}, nil
	}

	res := DrawResult{Card: drawn[0], Playable: drawn[0].PlayableOn(game.TopCard, game.CurrentColor)}
	if !res.Playable {
		game.CurrentTurn = game.Opponent(actorUserID)
		game.Turns++
	}
	return res, []Event{{
		Kind: EventCardsDrawn,
		Payload: CardsDrawnPayload{
			UserID:         actorUserID,
			Cards:          drawn,
			NextTurnUserID: game.CurrentTurn,
		},
		Recipients: []string{actorUserID},
	}}, nil
}

// EndAsDraw stops a running game without a winner.
func (s *Service) EndAsDraw(game *domain.Game, reason EndReason) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	return []Event{s.end(game, "", reason)}, nil
}

func (s *Service) end(game *domain.Game, winner string, reason EndReason) Event {
	game.Phase = domain.PhaseEnded
	game.Winner = winner
	game.CurrentTurn = ""
	return Event{
		Kind:    EventGameEnded,
		Payload: GameEndedPayload{Winner: winner, Reason: reason},
	}
}
