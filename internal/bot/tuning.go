package bot

import (
	"errors"
	"math"

	botinternal "unobot/internal/bot/internal"
)

// Tuning holds every knob of the search engines and the arbiter.
type Tuning struct {
	Search botinternal.SearchOptions

	// EndgameHandSize is the largest hand for which best-first always wins arbitration.
	EndgameHandSize int
	// BestFirstWeight and ExpectimaxWeight drive the coin flip between two plain cards.
	BestFirstWeight  float64
	ExpectimaxWeight float64
}

// DefaultTuning is the standard configuration used by every level.
var DefaultTuning = Tuning{
	Search:           botinternal.DefaultSearchOptions(),
	EndgameHandSize:  3,
	BestFirstWeight:  0.4,
	ExpectimaxWeight: 0.6,
}

var (
	ErrEndgameHandSize = errors.New("endgame hand size must not be negative")
	ErrArbiterWeights  = errors.New("arbiter weights must be non-negative and sum to 1")
)

// Validate checks the search bounds and the arbitration weights.
func (t Tuning) Validate() error {
	if err := t.Search.Validate(); err != nil {
		return err
	}
	if t.EndgameHandSize < 0 {
		return ErrEndgameHandSize
	}
	if t.BestFirstWeight < 0 || t.ExpectimaxWeight < 0 || math.Abs(t.BestFirstWeight+t.ExpectimaxWeight-1) > 1e-9 {
		return ErrArbiterWeights
	}
	return nil
}
