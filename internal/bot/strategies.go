package bot

import (
	botinternal "unobot/internal/bot/internal"
	"unobot/internal/domain"
)

// GreedyBot plays the card that leaves the most follow-up plays in hand,
// keeping wild cards back when a colored card does as well.
type GreedyBot struct {
	rng Rand
}

func (b *GreedyBot) CalculateMove(view TurnView) (Move, error) {
	if err := view.Validate(); err != nil {
		return Move{Draw: true}, err
	}
	color := view.ActiveColor()
	playable := domain.PlayableCards(view.Hand, view.TopCard, color)
	if len(playable) == 0 {
		return Move{Draw: true}, nil
	}

	best := playable[0]
	bestSpare := -1
	for _, candidate := range playable {
		rest := domain.RemoveCard(view.Hand, candidate)
		next := candidate.Color
		if candidate.IsWildCard() {
			next = ChooseColor(rest, b.rng)
		}
		spare := len(domain.PlayableCards(rest, candidate, next))
		if spare > bestSpare || (spare == bestSpare && best.IsWildCard() && !candidate.IsWildCard()) {
			best = candidate
			bestSpare = spare
		}
	}
	return playMove(view.Hand, best, b.rng), nil
}

// SearchBot runs the best-first engine alone.
type SearchBot struct {
	tuning Tuning
	rng    Rand
}

func (b *SearchBot) CalculateMove(view TurnView) (Move, error) {
	if err := view.Validate(); err != nil {
		return Move{Draw: true}, err
	}
	card, ok, stats := botinternal.BestFirst(view.Hand, view.TopCard, view.ActiveColor(), b.tuning.Search, b.rng)
	trace := Trace{DecidedBy: "BestFirst", BestFirst: stats}
	if !ok {
		return Move{Draw: true, Trace: trace}, nil
	}
	move := playMove(view.Hand, card, b.rng)
	move.Trace = trace
	return move, nil
}

// HybridBot runs both engines and lets the arbiter pick.
type HybridBot struct {
	arbiter *Arbiter
	rng     Rand
}

func (b *HybridBot) CalculateMove(view TurnView) (Move, error) {
	if err := view.Validate(); err != nil {
		return Move{Draw: true}, err
	}
	ctx := b.arbiter.Decide(view.Hand, view.TopCard, view.CurrentColor)
	if !ctx.Choice.OK {
		return Move{Draw: true, Trace: ctx.Trace()}, nil
	}
	move := playMove(view.Hand, ctx.Choice.Card, b.rng)
	move.Trace = ctx.Trace()
	return move, nil
}
