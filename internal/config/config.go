package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"unobot/internal/bot"
)

// TuningOverrides replaces individual engine knobs; nil fields keep the default.
type TuningOverrides struct {
	FrontierLimit    *int     `json:"frontier_limit"`
	ExpectimaxDepth  *int     `json:"expectimax_depth"`
	EndgameHandSize  *int     `json:"endgame_hand_size"`
	BestFirstWeight  *float64 `json:"best_first_weight"`
	ExpectimaxWeight *float64 `json:"expectimax_weight"`
}

type GameConfig struct {
	HandSize int `json:"hand_size"`
	// MaxTurns ends a self-play match as a draw after this many actions.
	MaxTurns int             `json:"max_turns"`
	Tuning   TuningOverrides `json:"tuning"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// ReadGameConfig parses a game configuration file.
func ReadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if _, err := c.Apply(bot.DefaultTuning); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return &c, nil
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg, loadErr = ReadGameConfig(path)
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil before a
// successful load.
func GetGameConfig() *GameConfig {
	return cfg
}

// Apply layers the overrides on top of base and validates the result.
func (c *GameConfig) Apply(base bot.Tuning) (bot.Tuning, error) {
	t := base
	o := c.Tuning
	if o.FrontierLimit != nil {
		t.Search.FrontierLimit = *o.FrontierLimit
	}
	if o.ExpectimaxDepth != nil {
		t.Search.Depth = *o.ExpectimaxDepth
	}
	if o.EndgameHandSize != nil {
		t.EndgameHandSize = *o.EndgameHandSize
	}
	if o.BestFirstWeight != nil {
		t.BestFirstWeight = *o.BestFirstWeight
	}
	if o.ExpectimaxWeight != nil {
		t.ExpectimaxWeight = *o.ExpectimaxWeight
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}
