package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unobot/internal/domain"
)

func TestAgentPlaysOwnHand(t *testing.T) {
	game := &domain.Game{
		Players: map[string]*domain.Player{
			"bot":   {UserID: "bot", Seat: 1, Hand: []domain.Card{card(domain.ColorGreen, "4"), red3}},
			"other": {UserID: "other", Seat: 2, Hand: []domain.Card{red1}},
		},
		TopCard:      red9,
		CurrentColor: domain.ColorRed,
	}
	agent := &Agent{ID: "bot", Name: "Bot", Strategy: &GreedyBot{rng: fixedRand{}}}

	move, err := agent.Play(game)
	require.NoError(t, err)
	assert.Equal(t, red3, move.Card)
}

func TestAgentNotSeatedDraws(t *testing.T) {
	agent := &Agent{ID: "ghost", Strategy: &GreedyBot{rng: fixedRand{}}}
	move, err := agent.Play(&domain.Game{Players: map[string]*domain.Player{}})
	require.NoError(t, err)
	assert.True(t, move.Draw)
}

func TestAgentPropagatesStrategyError(t *testing.T) {
	game := &domain.Game{
		Players: map[string]*domain.Player{"bot": {UserID: "bot", Hand: []domain.Card{{Color: "Pink", Value: "1"}}}},
		TopCard: red9,
	}
	agent := &Agent{ID: "bot", Strategy: &GreedyBot{rng: fixedRand{}}}
	move, err := agent.Play(game)
	assert.ErrorIs(t, err, domain.ErrInvalidCard)
	assert.True(t, move.Draw)
}
