package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"unobot/internal/domain"
)

func TestChooseColorMostFrequent(t *testing.T) {
	hand := []domain.Card{card(domain.ColorRed, "3"), card(domain.ColorRed, "7"), card(domain.ColorBlue, "2")}
	assert.Equal(t, domain.ColorRed, ChooseColor(hand, rand.New(rand.NewSource(1))))
}

func TestChooseColorTieGoesToFirstSeen(t *testing.T) {
	hand := []domain.Card{card(domain.ColorGreen, "1"), wild, card(domain.ColorYellow, "2"), card(domain.ColorYellow, "9"), card(domain.ColorGreen, "4")}
	assert.Equal(t, domain.ColorGreen, ChooseColor(hand, rand.New(rand.NewSource(1))))
}

func TestChooseColorIgnoresWilds(t *testing.T) {
	hand := []domain.Card{wild, plusFour, wild, card(domain.ColorBlue, "2")}
	assert.Equal(t, domain.ColorBlue, ChooseColor(hand, rand.New(rand.NewSource(1))))
}

func TestChooseColorOnlyWildsIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hand := []domain.Card{wild, plusFour}

	counts := make(map[domain.Color]int)
	const trials = 4000
	for i := 0; i < trials; i++ {
		c := ChooseColor(hand, rng)
		assert.True(t, c.IsBase(), "declared %s", c)
		counts[c]++
	}
	assert.Len(t, counts, 4)
	for _, c := range domain.BaseColors {
		assert.InDelta(t, trials/4, counts[c], trials/20, "color %s drawn %d times", c, counts[c])
	}
}

func TestChooseColorSeeded(t *testing.T) {
	hand := []domain.Card{wild}
	a := ChooseColor(hand, rand.New(rand.NewSource(9)))
	b := ChooseColor(hand, rand.New(rand.NewSource(9)))
	assert.Equal(t, a, b)
}
