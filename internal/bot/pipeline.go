package bot

import "unobot/internal/domain"

// EngineResult is the pick of one search engine. OK is false for no-move.
type EngineResult struct {
	Card domain.Card
	OK   bool
}

// SelectionContext holds the state of the arbitration pipeline.
type SelectionContext struct {
	Hand       []domain.Card
	BestFirst  EngineResult
	Expectimax EngineResult

	BestFirstStats  Stats
	ExpectimaxStats Stats

	Decided   bool
	Choice    EngineResult
	DecidedBy string
}

// Trace condenses the context into what a move reports.
func (ctx *SelectionContext) Trace() Trace {
	return Trace{
		DecidedBy:  ctx.DecidedBy,
		BestFirst:  ctx.BestFirstStats,
		Expectimax: ctx.ExpectimaxStats,
	}
}

// SelectionRule is one step of the arbitration pipeline. A rule does nothing
// once an earlier rule has decided.
type SelectionRule interface {
	Name() string
	Apply(ctx *SelectionContext)
}

func (ctx *SelectionContext) decide(rule SelectionRule, choice EngineResult) {
	ctx.Decided = true
	ctx.Choice = choice
	ctx.DecidedBy = rule.Name()
}

// OneSidedRule returns whichever engine produced a move when the other did not.
type OneSidedRule struct{}

func (r *OneSidedRule) Name() string { return "OneSided" }

func (r *OneSidedRule) Apply(ctx *SelectionContext) {
	if ctx.Decided {
		return
	}
	switch {
	case !ctx.BestFirst.OK:
		ctx.decide(r, ctx.Expectimax)
	case !ctx.Expectimax.OK:
		ctx.decide(r, ctx.BestFirst)
	}
}

// EndgameRule trusts best-first once the hand is small.
type EndgameRule struct {
	MaxHandSize int
}

func (r *EndgameRule) Name() string { return "Endgame" }

func (r *EndgameRule) Apply(ctx *SelectionContext) {
	if ctx.Decided || len(ctx.Hand) > r.MaxHandSize {
		return
	}
	ctx.decide(r, ctx.BestFirst)
}

// SpecialCardRule prefers whichever pick is a special card, expectimax first.
type SpecialCardRule struct{}

func (r *SpecialCardRule) Name() string { return "SpecialCard" }

func (r *SpecialCardRule) Apply(ctx *SelectionContext) {
	if ctx.Decided {
		return
	}
	switch {
	case ctx.Expectimax.Card.IsSpecial():
		ctx.decide(r, ctx.Expectimax)
	case ctx.BestFirst.Card.IsSpecial():
		ctx.decide(r, ctx.BestFirst)
	}
}

// WeightedChoiceRule flips a weighted coin between the two picks.
type WeightedChoiceRule struct {
	BestFirstWeight  float64
	ExpectimaxWeight float64
	Rng              Rand
}

func (r *WeightedChoiceRule) Name() string { return "WeightedChoice" }

func (r *WeightedChoiceRule) Apply(ctx *SelectionContext) {
	if ctx.Decided {
		return
	}
	total := r.BestFirstWeight + r.ExpectimaxWeight
	if total <= 0 {
		ctx.decide(r, ctx.BestFirst)
		return
	}
	if r.Rng.Float64()*total < r.BestFirstWeight {
		ctx.decide(r, ctx.BestFirst)
		return
	}
	ctx.decide(r, ctx.Expectimax)
}
