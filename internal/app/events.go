package app

import "unobot/internal/domain"

// EventKind identifies emitted domain events for dispatch.
type EventKind string

const (
	EventHandDealt   EventKind = "hand_dealt"
	EventGameStarted EventKind = "game_started"
	EventCardPlayed  EventKind = "card_played"
	EventCardsDrawn  EventKind = "cards_drawn"
	EventGameEnded   EventKind = "game_ended"
)

// EndReason explains why a game stopped.
type EndReason string

const (
	EndReasonWin           EndReason = "win"
	EndReasonDeckExhausted EndReason = "deck_exhausted"
	EndReasonTurnLimit     EndReason = "turn_limit"
	EndReasonCancelled     EndReason = "cancelled"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type HandDealtPayload struct {
	UserID string
	Hand   []domain.Card
}

type GameStartedPayload struct {
	GameID          string
	Phase           domain.Phase
	TopCard         domain.Card
	CurrentColor    domain.Color
	FirstTurnUserID string
}

type CardPlayedPayload struct {
	UserID         string
	Card           domain.Card
	CurrentColor   domain.Color
	CardsLeft      int
	NextTurnUserID string
}

type CardsDrawnPayload struct {
	UserID         string
	Cards          []domain.Card
	Penalty        bool
	NextTurnUserID string
}

type GameEndedPayload struct {
	Winner string // empty for a drawn game
	Reason EndReason
}
