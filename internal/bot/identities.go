package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type BotIdentity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "good", "smart", "god" or easy/medium/hard
}

// Roster indexes a set of bot identities by user ID.
type Roster struct {
	identities []BotIdentity
	byID       map[string]BotIdentity
}

var (
	defaultRoster = NewRoster(nil)
	loadOnce      sync.Once
	loadErr       error
)

// NewRoster builds a roster, skipping identities without a user ID.
func NewRoster(identities []BotIdentity) *Roster {
	r := &Roster{byID: make(map[string]BotIdentity)}
	for _, identity := range identities {
		if identity.UserID == "" {
			continue
		}
		r.identities = append(r.identities, identity)
		r.byID[identity.UserID] = identity
	}
	return r
}

// ReadRoster parses a JSON array of identities from path.
func ReadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot identities: %w", err)
	}
	var identities []BotIdentity
	if err := json.Unmarshal(data, &identities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot identities: %w", err)
	}
	for _, identity := range identities {
		if identity.Difficulty == "" {
			continue
		}
		if _, err := ParseBotLevel(identity.Difficulty); err != nil {
			return nil, fmt.Errorf("bot %s: %w", identity.UserID, err)
		}
	}
	return NewRoster(identities), nil
}

// LoadIdentities loads the package roster from path once.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		r, err := ReadRoster(path)
		if err != nil {
			loadErr = err
			return
		}
		defaultRoster = r
	})
	return loadErr
}

// IsBot reports whether the given user ID belongs to the roster.
func (r *Roster) IsBot(userID string) bool {
	_, ok := r.byID[userID]
	return ok
}

// IdentityFor returns the identity of a bot, or a generated one for unknown IDs.
func (r *Roster) IdentityFor(userID string) (BotIdentity, bool) {
	identity, ok := r.byID[userID]
	if !ok {
		return BotIdentity{UserID: userID, DisplayName: fmt.Sprintf("AI %s", userID)}, false
	}
	if identity.DisplayName == "" {
		identity.DisplayName = userID
	}
	return identity, true
}

// LevelFor returns the configured level of a bot. Bots without a difficulty
// and unknown IDs report false.
func (r *Roster) LevelFor(userID string) (BotLevel, bool) {
	identity, ok := r.byID[userID]
	if !ok || identity.Difficulty == "" {
		return 0, false
	}
	level, err := ParseBotLevel(identity.Difficulty)
	if err != nil {
		return 0, false
	}
	return level, true
}

// All returns the identities in roster order.
func (r *Roster) All() []BotIdentity {
	out := make([]BotIdentity, len(r.identities))
	copy(out, r.identities)
	return out
}

// IsBot reports whether the given user ID belongs to the loaded roster.
func IsBot(userID string) bool { return defaultRoster.IsBot(userID) }

// IdentityFor looks a bot up in the loaded roster.
func IdentityFor(userID string) (BotIdentity, bool) { return defaultRoster.IdentityFor(userID) }

// LevelFor returns the level of a bot in the loaded roster.
func LevelFor(userID string) (BotLevel, bool) { return defaultRoster.LevelFor(userID) }

// Identities returns the loaded roster.
func Identities() []BotIdentity { return defaultRoster.All() }
