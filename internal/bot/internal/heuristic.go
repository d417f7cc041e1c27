package internal

import "unobot/internal/domain"

const (
	// EmptyHandCost is the best-first cost of a finished hand.
	EmptyHandCost = -1000
	// EmptyHandValue is the expectimax leaf value of a finished hand.
	EmptyHandValue = 1000
)

// Best-first cost weights, lower total is better.
const (
	CostPerCard     = 10
	CostSpecialCard = -5
	CostWildCard    = 3
	CostPerColor    = -2
)

// Expectimax leaf weights, higher total is better. Wild cards and color
// spread carry the opposite sign of the cost weights on purpose.
const (
	ValuePerCard     = -10
	ValueSpecialCard = 5
	ValuePerColor    = 3
	ValueWildCard    = 8
)

// HandCost scores a hand for best-first ordering. Lower is better.
func HandCost(hand []domain.Card) int {
	if len(hand) == 0 {
		return EmptyHandCost
	}
	cost := CostPerCard * len(hand)
	cost += CostSpecialCard * domain.CountSpecial(hand)
	cost += CostWildCard * domain.CountWildCards(hand)
	cost += CostPerColor * domain.DistinctColors(hand)
	return cost
}

// HandValue scores a hand as an expectimax leaf. Higher is better.
func HandValue(hand []domain.Card) int {
	if len(hand) == 0 {
		return EmptyHandValue
	}
	value := ValuePerCard * len(hand)
	value += ValueSpecialCard * domain.CountSpecial(hand)
	value += ValuePerColor * domain.DistinctColors(hand)
	value += ValueWildCard * domain.CountWildCards(hand)
	return value
}
