package internal

import (
	"errors"
	"math"
)

// ChanceWeights split a chance node between its continuation, an immediate
// penalized evaluation, and a second continuation.
type ChanceWeights struct {
	Continue float64
	Penalty  float64
	Tail     float64
}

// SearchOptions bound and weight both search engines.
type SearchOptions struct {
	// FrontierLimit stops best-first search once this many states are queued.
	FrontierLimit int
	// SpecialDiscount is subtracted from the cost of a path ending in a special card.
	SpecialDiscount int
	// ProgressTarget ends best-first search once a path removes this many cards.
	ProgressTarget int

	// Depth is the number of expectimax plies below the root.
	Depth int
	// Chance weights the chance-node mixture.
	Chance ChanceWeights
	// ChancePenalty is subtracted from the immediate evaluation at a chance node.
	ChancePenalty float64
	// StuckPenalty is subtracted when a deterministic node has no playable card.
	StuckPenalty float64
}

// DefaultSearchOptions returns the standard engine bounds.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		FrontierLimit:   100,
		SpecialDiscount: 2,
		ProgressTarget:  3,
		Depth:           2,
		Chance:          ChanceWeights{Continue: 0.7, Penalty: 0.2, Tail: 0.1},
		ChancePenalty:   10,
		StuckPenalty:    5,
	}
}

var (
	ErrFrontierLimit = errors.New("frontier limit must be positive")
	ErrDepth         = errors.New("expectimax depth must be positive")
	ErrChanceWeights = errors.New("chance weights must be non-negative and sum to 1")
)

// Validate rejects bounds that would make a search meaningless.
func (o SearchOptions) Validate() error {
	if o.FrontierLimit <= 0 {
		return ErrFrontierLimit
	}
	if o.Depth <= 0 {
		return ErrDepth
	}
	w := o.Chance
	if w.Continue < 0 || w.Penalty < 0 || w.Tail < 0 || math.Abs(w.Continue+w.Penalty+w.Tail-1) > 1e-9 {
		return ErrChanceWeights
	}
	return nil
}
