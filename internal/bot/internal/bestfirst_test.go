package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unobot/internal/domain"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestBestFirstNoPlayableCard(t *testing.T) {
	hand := []domain.Card{card(domain.ColorRed, "3"), card(domain.ColorGreen, "8")}
	_, ok, _ := BestFirst(hand, card(domain.ColorBlue, "5"), domain.ColorBlue, DefaultSearchOptions(), newRand())
	assert.False(t, ok)
}

func TestBestFirstEmptyHand(t *testing.T) {
	_, ok, _ := BestFirst(nil, card(domain.ColorBlue, "5"), domain.ColorBlue, DefaultSearchOptions(), newRand())
	assert.False(t, ok)
}

func TestBestFirstPlaysLastCard(t *testing.T) {
	last := card(domain.ColorGreen, "2")
	got, ok, _ := BestFirst([]domain.Card{last}, card(domain.ColorGreen, "9"), domain.ColorGreen, DefaultSearchOptions(), newRand())
	require.True(t, ok)
	assert.Equal(t, last, got)
}

func TestBestFirstPrefersCheapestContinuation(t *testing.T) {
	// Playing Blue 2 leaves [Blue Skip, Green 3] (cost 11); playing the Skip
	// leaves [Blue 2, Green 3] (cost 16 - 2 = 14).
	hand := []domain.Card{card(domain.ColorBlue, "2"), card(domain.ColorBlue, domain.ValueSkip), card(domain.ColorGreen, "3")}
	got, ok, stats := BestFirst(hand, card(domain.ColorBlue, "7"), domain.ColorBlue, DefaultSearchOptions(), newRand())
	require.True(t, ok)
	assert.Equal(t, card(domain.ColorBlue, "2"), got)
	assert.Equal(t, 1, stats.Expanded, "only the root is expanded")
	assert.Equal(t, 3, stats.Pushed)
}

func TestBestFirstDeadEndStillReturnsPath(t *testing.T) {
	// After Blue 2 nothing in hand matches Blue or 7, so the queue drains.
	hand := []domain.Card{card(domain.ColorBlue, "2"), card(domain.ColorGreen, "9"), card(domain.ColorYellow, "4")}
	got, ok, _ := BestFirst(hand, card(domain.ColorBlue, "7"), domain.ColorBlue, DefaultSearchOptions(), newRand())
	require.True(t, ok)
	assert.Equal(t, card(domain.ColorBlue, "2"), got)
}

func TestBestFirstFrontierLimitFallsBackToCheapestChild(t *testing.T) {
	hand := []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorRed, domain.ValueSkip), card(domain.ColorBlue, "9")}
	opts := DefaultSearchOptions()
	opts.FrontierLimit = 2

	got, ok, _ := BestFirst(hand, card(domain.ColorRed, "1"), domain.ColorRed, opts, newRand())
	require.True(t, ok)
	assert.Equal(t, card(domain.ColorRed, "5"), got)
}

func TestBestFirstDoesNotMutateHand(t *testing.T) {
	hand := []domain.Card{card(domain.ColorRed, "5"), wild, card(domain.ColorBlue, "5")}
	before := domain.CloneHand(hand)
	_, _, _ = BestFirst(hand, card(domain.ColorBlue, "5"), domain.ColorBlue, DefaultSearchOptions(), newRand())
	assert.Equal(t, before, hand)
}

func TestSearchesAgreeWithPlayability(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	opts := DefaultSearchOptions()

	for i := 0; i < 300; i++ {
		deck := domain.ShuffleDeck(domain.NewDeck(), rng)
		size := 1 + rng.Intn(10)
		hand := deck[:size]
		top := deck[size]
		color := top.Color
		if top.IsWildCard() {
			color = domain.BaseColors[rng.Intn(4)]
		}
		before := domain.CloneHand(hand)
		playable := len(domain.PlayableCards(hand, top, color)) > 0

		bf, ok, _ := BestFirst(hand, top, color, opts, rng)
		require.Equal(t, playable, ok, "best-first hand=%v top=%s color=%s", hand, top, color)
		if ok {
			assert.True(t, domain.ContainsCard(hand, bf), "best-first returned %s not in %v", bf, hand)
			assert.True(t, bf.PlayableOn(top, color), "best-first returned unplayable %s", bf)
		}

		em, ok, _ := Expectimax(hand, top, color, opts, rng)
		require.Equal(t, playable, ok, "expectimax hand=%v top=%s color=%s", hand, top, color)
		if ok {
			assert.True(t, domain.ContainsCard(hand, em), "expectimax returned %s not in %v", em, hand)
			assert.True(t, em.PlayableOn(top, color), "expectimax returned unplayable %s", em)
		}

		require.Equal(t, before, hand, "search mutated the hand")
	}
}
