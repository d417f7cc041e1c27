package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// BotLevel selects a strategy.
type BotLevel int

const (
	BotLevelGood BotLevel = iota + 1
	BotLevelSmart
	BotLevelGod
)

var ErrUnknownLevel = errors.New("unknown bot level")

func (l BotLevel) String() string {
	switch l {
	case BotLevelGood:
		return "good"
	case BotLevelSmart:
		return "smart"
	case BotLevelGod:
		return "god"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseBotLevel accepts good/smart/god and the roster aliases easy/medium/hard.
func ParseBotLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good", "easy":
		return BotLevelGood, nil
	case "smart", "medium":
		return BotLevelSmart, nil
	case "god", "hard":
		return BotLevelGod, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// NewBrain creates a new AI brain based on the specified level. A nil rng is
// replaced by a time-seeded source.
func NewBrain(level BotLevel, tuning Tuning, rng Rand) (Brain, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch level {
	case BotLevelGood:
		return &GreedyBot{rng: rng}, nil
	case BotLevelSmart:
		return &SearchBot{tuning: tuning, rng: rng}, nil
	case BotLevelGod:
		return &HybridBot{arbiter: NewArbiter(tuning, rng), rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(level))
	}
}
