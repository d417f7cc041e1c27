package internal

import (
	"math"

	"unobot/internal/domain"
)

// Expectimax plays each playable card and scores the subtree below it,
// alternating chance and deterministic layers for opts.Depth plies. It returns
// the card with the highest expected value, the first one seen on ties. ok is
// false when nothing is playable. hand is never modified.
func Expectimax(hand []domain.Card, top domain.Card, color domain.Color, opts SearchOptions, rng Rand) (domain.Card, bool, Stats) {
	s := &expectimaxSearch{opts: opts, rng: rng}

	playable := domain.PlayableCards(hand, top, color)
	if len(playable) == 0 {
		return domain.Card{}, false, s.stats
	}

	var best domain.Card
	bestValue := math.Inf(-1)
	found := false
	for _, card := range playable {
		v := s.value(domain.RemoveCard(hand, card), card, color, opts.Depth, true)
		if !found || v > bestValue {
			best, bestValue, found = card, v, true
		}
	}
	return best, true, s.stats
}

type expectimaxSearch struct {
	opts  SearchOptions
	rng   Rand
	stats Stats
}

// value scores hand after played was put on the pile. The opponent is not
// enumerated: a chance node is a fixed mixture of two continuations of our own
// next move and an immediate penalized evaluation.
func (s *expectimaxSearch) value(hand []domain.Card, played domain.Card, color domain.Color, depth int, chance bool) float64 {
	if depth == 0 || len(hand) == 0 {
		s.stats.Leaves++
		return float64(HandValue(hand))
	}

	next := colorAfter(played, hand, color, s.rng)

	if chance {
		w := s.opts.Chance
		v := w.Continue * s.value(hand, played, next, depth-1, false)
		v += w.Penalty * (float64(HandValue(hand)) - s.opts.ChancePenalty)
		v += w.Tail * s.value(hand, played, next, depth-1, false)
		return v
	}

	s.stats.Expanded++
	playable := domain.PlayableCards(hand, played, next)
	if len(playable) == 0 {
		return float64(HandValue(hand)) - s.opts.StuckPenalty
	}

	best := math.Inf(-1)
	for _, card := range playable {
		v := s.value(domain.RemoveCard(hand, card), card, next, depth-1, true)
		best = math.Max(best, v)
	}
	return best
}
