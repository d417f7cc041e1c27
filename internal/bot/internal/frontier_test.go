package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unobot/internal/domain"
)

func TestFrontierPopsLowestCostFirst(t *testing.T) {
	f := &frontier{}
	f.push(&searchState{cost: 20})
	f.push(&searchState{cost: -5})
	f.push(&searchState{cost: 7})

	require.Equal(t, 3, f.Len())
	assert.Equal(t, -5, f.peek().cost)
	assert.Equal(t, -5, f.pop().cost)
	assert.Equal(t, 7, f.pop().cost)
	assert.Equal(t, 20, f.pop().cost)
	assert.Nil(t, f.peek())
}

func TestFrontierTieBreaks(t *testing.T) {
	red := card(domain.ColorRed, "1")
	blue := card(domain.ColorBlue, "1")

	f := &frontier{}
	f.push(&searchState{cost: 1, hand: []domain.Card{red}, color: domain.ColorRed})
	f.push(&searchState{cost: 1, hand: []domain.Card{blue}, color: domain.ColorRed})
	f.push(&searchState{cost: 1, hand: []domain.Card{blue}, path: []domain.Card{red}, color: domain.ColorRed})
	f.push(&searchState{cost: 1, hand: []domain.Card{blue}, path: []domain.Card{red}, color: domain.ColorBlue})
	f.push(&searchState{cost: 1, hand: []domain.Card{blue}, path: []domain.Card{red}, color: domain.ColorBlue})

	first := f.pop()
	assert.Equal(t, []domain.Card{blue}, first.hand, "hand order decides equal costs")
	assert.Empty(t, first.path, "shorter path sorts first")

	second := f.pop()
	assert.Equal(t, domain.ColorBlue, second.color)
	third := f.pop()
	assert.Equal(t, domain.ColorBlue, third.color)
	assert.Less(t, second.seq, third.seq, "identical states pop in push order")

	assert.Equal(t, domain.ColorRed, f.pop().color)
	assert.Equal(t, []domain.Card{red}, f.pop().hand)
}

func TestCompareCards(t *testing.T) {
	a := []domain.Card{card(domain.ColorBlue, "1")}
	b := []domain.Card{card(domain.ColorBlue, "1"), card(domain.ColorRed, "1")}
	assert.Negative(t, compareCards(a, b))
	assert.Positive(t, compareCards(b, a))
	assert.Zero(t, compareCards(b, b))
}
