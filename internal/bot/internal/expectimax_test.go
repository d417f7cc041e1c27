package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unobot/internal/domain"
)

func TestExpectimaxNoPlayableCardDoesNotRecurse(t *testing.T) {
	hand := []domain.Card{card(domain.ColorRed, "3")}
	_, ok, stats := Expectimax(hand, card(domain.ColorBlue, "5"), domain.ColorBlue, DefaultSearchOptions(), newRand())
	assert.False(t, ok)
	assert.Zero(t, stats.Leaves)
	assert.Zero(t, stats.Expanded)
}

func TestExpectimaxFinishingCard(t *testing.T) {
	last := card(domain.ColorGreen, "2")
	got, ok, stats := Expectimax([]domain.Card{last}, card(domain.ColorGreen, "9"), domain.ColorGreen, DefaultSearchOptions(), newRand())
	require.True(t, ok)
	assert.Equal(t, last, got)
	assert.Equal(t, 1, stats.Leaves)
}

func TestExpectimaxTieKeepsFirstCandidate(t *testing.T) {
	hand := []domain.Card{card(domain.ColorRed, "4"), card(domain.ColorGreen, "4")}
	got, ok, _ := Expectimax(hand, card(domain.ColorYellow, "4"), domain.ColorYellow, DefaultSearchOptions(), newRand())
	require.True(t, ok)
	assert.Equal(t, card(domain.ColorRed, "4"), got)
}

func TestExpectimaxScenario(t *testing.T) {
	// Red 5 scores -5.4 against -6.0 for Blue 5; Red Skip is not playable.
	hand := []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorRed, domain.ValueSkip), card(domain.ColorBlue, "5")}
	got, ok, _ := Expectimax(hand, card(domain.ColorBlue, "5"), domain.ColorBlue, DefaultSearchOptions(), newRand())
	require.True(t, ok)
	assert.Equal(t, card(domain.ColorRed, "5"), got)
}

func TestChanceNodeMixture(t *testing.T) {
	s := &expectimaxSearch{opts: DefaultSearchOptions(), rng: newRand()}
	// Both continuations are the leaf -7; the immediate term is 0.2 * (-7 - 10).
	v := s.value([]domain.Card{card(domain.ColorRed, "5")}, card(domain.ColorRed, "3"), domain.ColorRed, 1, true)
	assert.InDelta(t, -9.0, v, 1e-9)
	assert.Equal(t, 2, s.stats.Leaves)
}

func TestDeterministicNodeStuckPenalty(t *testing.T) {
	s := &expectimaxSearch{opts: DefaultSearchOptions(), rng: newRand()}
	v := s.value([]domain.Card{card(domain.ColorGreen, "9")}, card(domain.ColorRed, "3"), domain.ColorRed, 1, false)
	assert.InDelta(t, -12.0, v, 1e-9)
}

func TestDeterministicNodeTakesMaximum(t *testing.T) {
	s := &expectimaxSearch{opts: DefaultSearchOptions(), rng: newRand()}
	hand := []domain.Card{card(domain.ColorRed, domain.ValueSkip), card(domain.ColorBlue, "5")}
	// Leaves: [Blue 5] = -7, [Red Skip] = -2.
	v := s.value(hand, card(domain.ColorRed, "5"), domain.ColorRed, 1, false)
	assert.InDelta(t, -2.0, v, 1e-9)
}

func TestSearchOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultSearchOptions().Validate())

	opts := DefaultSearchOptions()
	opts.FrontierLimit = 0
	assert.ErrorIs(t, opts.Validate(), ErrFrontierLimit)

	opts = DefaultSearchOptions()
	opts.Depth = 0
	assert.ErrorIs(t, opts.Validate(), ErrDepth)

	opts = DefaultSearchOptions()
	opts.Chance.Tail = 0.5
	assert.ErrorIs(t, opts.Validate(), ErrChanceWeights)
}
