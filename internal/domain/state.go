package domain

import "math/rand"

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active game state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a game concludes.
	PhaseEnded Phase = "ended"
)

// Player holds state for a participant in the match.
type Player struct {
	UserID string
	Seat   int // 1-based seat number
	Hand   []Card
}

// Game is the authoritative state of one two-player game.
type Game struct {
	ID    string
	Phase Phase

	Players map[string]*Player // userId -> player
	Seats   []string           // seat order, index 0 acts first

	Deck    []Card // draw pile, last element is drawn first
	Discard []Card // played cards below TopCard, oldest first

	TopCard      Card
	CurrentColor Color

	CurrentTurn string
	Winner      string // empty while playing or when the game was drawn
	Turns       int
}

// Opponent returns the other seated user, or "" if userID is not seated.
func (g *Game) Opponent(userID string) string {
	if _, ok := g.Players[userID]; !ok {
		return ""
	}
	for _, id := range g.Seats {
		if id != userID {
			return id
		}
	}
	return ""
}

// Reshuffle turns every discarded card under the top card into a new shuffled
// draw pile. The top card stays in play.
func (g *Game) Reshuffle(rng *rand.Rand) {
	if len(g.Discard) == 0 {
		return
	}
	pile := append(g.Deck, g.Discard...)
	g.Deck = ShuffleDeck(pile, rng)
	g.Discard = nil
}

// Draw moves up to n cards from the draw pile into userID's hand, reshuffling
// the discards when the pile runs out. Fewer than n cards are returned when the
// deck and the discards are both exhausted.
func (g *Game) Draw(userID string, n int, rng *rand.Rand) []Card {
	pl, ok := g.Players[userID]
	if !ok {
		return nil
	}
	drawn := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		if len(g.Deck) == 0 {
			g.Reshuffle(rng)
			if len(g.Deck) == 0 {
				break
			}
		}
		c := g.Deck[len(g.Deck)-1]
		g.Deck = g.Deck[:len(g.Deck)-1]
		pl.Hand = append(pl.Hand, c)
		drawn = append(drawn, c)
	}
	return drawn
}

// CardsLeft reports the size of the draw pile plus what a reshuffle could add.
func (g *Game) CardsLeft() int {
	return len(g.Deck) + len(g.Discard)
}
