package bot

import (
	"fmt"

	botinternal "unobot/internal/bot/internal"
	"unobot/internal/domain"
)

// Move represents the decision made by the AI.
type Move struct {
	// Draw means no card in hand can be played; the caller must draw instead.
	Draw bool
	Card domain.Card
	// DeclaredColor is set only when Card is a Wild or +4.
	DeclaredColor domain.Color
	// Trace is the search work behind the move; zero for greedy play.
	Trace Trace
}

// Stats counts the work one search engine did.
type Stats = botinternal.Stats

// Trace records which engines ran for a move and what decided it.
type Trace struct {
	DecidedBy  string
	BestFirst  Stats
	Expectimax Stats
}

// TurnView is what a strategy sees when it is asked to act.
type TurnView struct {
	Hand         []domain.Card
	TopCard      domain.Card
	CurrentColor domain.Color // empty means the top card's color
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(view TurnView) (Move, error)
}

// Rand is the injectable randomness used for color fallback and arbitration.
// *rand.Rand satisfies it.
type Rand = botinternal.Rand

// ChooseColor returns the color to declare for a wild card given the cards
// left in hand after playing it.
func ChooseColor(hand []domain.Card, rng Rand) domain.Color {
	return botinternal.ChooseColor(hand, rng)
}

// ActiveColor resolves an unset current color to the top card's color.
func (v TurnView) ActiveColor() domain.Color {
	if v.CurrentColor == "" {
		return v.TopCard.Color
	}
	return v.CurrentColor
}

// Validate rejects cards outside the deck vocabulary.
func (v TurnView) Validate() error {
	if err := domain.ValidateHand(v.Hand); err != nil {
		return err
	}
	if err := v.TopCard.Validate(); err != nil {
		return err
	}
	if v.CurrentColor != "" && !v.CurrentColor.IsBase() {
		return fmt.Errorf("%w: current color %q", domain.ErrInvalidCard, v.CurrentColor)
	}
	return nil
}

// playMove wraps a chosen card, declaring a color from the rest of the hand
// when the card is wild.
func playMove(hand []domain.Card, card domain.Card, rng Rand) Move {
	move := Move{Card: card}
	if card.IsWildCard() {
		move.DeclaredColor = ChooseColor(domain.RemoveCard(hand, card), rng)
	}
	return move
}
