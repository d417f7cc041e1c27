package domain

import (
	"math/rand"
	"sort"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 108

// NewDeck returns the ordered deck: per color one 0 and two of every other
// colored face, then four Wild and four +4.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, color := range BaseColors {
		deck = append(deck, Card{Color: color, Value: ColoredValues[0]})
		for _, value := range ColoredValues[1:] {
			deck = append(deck, Card{Color: color, Value: value}, Card{Color: color, Value: value})
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, Card{Color: ColorWild, Value: ValueWild}, Card{Color: ColorWild, Value: ValuePlusFour})
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortHand orders a hand in place by Card.Compare.
func SortHand(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Less(cards[j])
	})
}
