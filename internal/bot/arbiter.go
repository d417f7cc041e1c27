package bot

import (
	"math/rand"
	"time"

	botinternal "unobot/internal/bot/internal"
	"unobot/internal/domain"
)

// Engine is a search that picks one playable card, or reports false for no-move.
type Engine func(hand []domain.Card, top domain.Card, color domain.Color, opts botinternal.SearchOptions, rng botinternal.Rand) (domain.Card, bool, botinternal.Stats)

// Arbiter runs both search engines and reconciles their picks through the
// selection pipeline.
type Arbiter struct {
	Tuning     Tuning
	BestFirst  Engine
	Expectimax Engine
	Rules      []SelectionRule

	rng Rand
}

// NewArbiter wires the real engines and the standard rule order. A nil rng is
// replaced by a time-seeded source.
func NewArbiter(tuning Tuning, rng Rand) *Arbiter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Arbiter{
		Tuning:     tuning,
		BestFirst:  botinternal.BestFirst,
		Expectimax: botinternal.Expectimax,
		Rules: []SelectionRule{
			&OneSidedRule{},
			&EndgameRule{MaxHandSize: tuning.EndgameHandSize},
			&SpecialCardRule{},
			&WeightedChoiceRule{
				BestFirstWeight:  tuning.BestFirstWeight,
				ExpectimaxWeight: tuning.ExpectimaxWeight,
				Rng:              rng,
			},
		},
		rng: rng,
	}
}

// Decide runs both engines and the pipeline, returning the full trace. When
// nothing in hand is playable neither engine runs.
func (a *Arbiter) Decide(hand []domain.Card, top domain.Card, color domain.Color) SelectionContext {
	if color == "" {
		color = top.Color
	}
	ctx := SelectionContext{Hand: hand}
	if len(domain.PlayableCards(hand, top, color)) == 0 {
		ctx.Decided = true
		return ctx
	}

	bf, ok, stats := a.BestFirst(hand, top, color, a.Tuning.Search, a.rng)
	ctx.BestFirst = EngineResult{Card: bf, OK: ok}
	ctx.BestFirstStats = stats
	ex, ok, stats := a.Expectimax(hand, top, color, a.Tuning.Search, a.rng)
	ctx.Expectimax = EngineResult{Card: ex, OK: ok}
	ctx.ExpectimaxStats = stats

	for _, rule := range a.Rules {
		rule.Apply(&ctx)
		if ctx.Decided {
			break
		}
	}
	if !ctx.Decided {
		ctx.Decided = true
		ctx.Choice = ctx.BestFirst
		ctx.DecidedBy = "Default"
	}
	return ctx
}

// GetBestMove returns the card to play, or false when the caller must draw.
func (a *Arbiter) GetBestMove(hand []domain.Card, top domain.Card, color domain.Color) (domain.Card, bool) {
	ctx := a.Decide(hand, top, color)
	if !ctx.Choice.OK {
		return domain.Card{}, false
	}
	return ctx.Choice.Card, true
}
