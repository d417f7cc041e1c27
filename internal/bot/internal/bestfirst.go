package internal

import "unobot/internal/domain"

// Stats counts the work a search did.
type Stats struct {
	Expanded int // states whose children were generated
	Pushed   int // frontier pushes, root included
	Leaves   int // expectimax leaf evaluations
}

// BestFirst searches sequences of plays ordered by HandCost and returns the
// first card of the best path found. ok is false when no card in hand is
// playable. hand is never modified.
//
// Expansion is shallow: once any path exists, the first popped state that
// still has a playable card ends the search.
func BestFirst(hand []domain.Card, top domain.Card, color domain.Color, opts SearchOptions, rng Rand) (domain.Card, bool, Stats) {
	var stats Stats
	f := &frontier{}
	f.push(&searchState{cost: HandCost(hand), hand: domain.CloneHand(hand), color: color})
	stats.Pushed++

	explored := make(map[string]struct{})
	var path []domain.Card

	for f.Len() > 0 && f.Len() < opts.FrontierLimit {
		state := f.pop()
		path = state.path

		key := domain.HandKey(state.hand)
		if _, seen := explored[key]; seen {
			continue
		}
		explored[key] = struct{}{}

		if len(state.hand) == 0 || (len(path) > 0 && len(state.hand) <= len(hand)-opts.ProgressTarget) {
			return firstOf(path, stats)
		}

		playable := domain.PlayableCards(state.hand, top, state.color)
		if len(playable) == 0 && len(path) == 0 {
			return domain.Card{}, false, stats
		}
		if len(playable) > 0 && len(path) > 0 {
			return path[0], true, stats
		}

		stats.Expanded++
		for _, card := range playable {
			next := domain.RemoveCard(state.hand, card)
			cost := HandCost(next)
			if card.IsSpecial() {
				cost -= opts.SpecialDiscount
			}
			nextPath := make([]domain.Card, len(path), len(path)+1)
			copy(nextPath, path)
			nextPath = append(nextPath, card)

			f.push(&searchState{
				cost:  cost,
				hand:  next,
				path:  nextPath,
				color: colorAfter(card, next, state.color, rng),
			})
			stats.Pushed++
		}
	}

	// The bound can trip right after the root expansion; fall back to the
	// cheapest queued path so a playable hand always yields a move.
	if len(path) == 0 {
		if best := f.peek(); best != nil {
			path = best.path
		}
	}
	return firstOf(path, stats)
}

func firstOf(path []domain.Card, stats Stats) (domain.Card, bool, Stats) {
	if len(path) == 0 {
		return domain.Card{}, false, stats
	}
	return path[0], true, stats
}
