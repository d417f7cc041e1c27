package internal

import (
	"testing"

	"unobot/internal/domain"
)

func card(color domain.Color, value domain.Value) domain.Card {
	return domain.Card{Color: color, Value: value}
}

var (
	wild     = card(domain.ColorWild, domain.ValueWild)
	plusFour = card(domain.ColorWild, domain.ValuePlusFour)
)

func TestEmptyHandScores(t *testing.T) {
	if got := HandCost(nil); got != -1000 {
		t.Fatalf("HandCost(empty) = %d, want -1000", got)
	}
	if got := HandValue([]domain.Card{}); got != 1000 {
		t.Fatalf("HandValue(empty) = %d, want 1000", got)
	}
}

func TestHandCost(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want int
	}{
		{name: "plain single color", hand: []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorRed, "7")}, want: 18},
		{name: "action card discounted", hand: []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorRed, domain.ValueSkip)}, want: 13},
		{name: "wild discounted then penalized", hand: []domain.Card{card(domain.ColorRed, "5"), wild}, want: 16},
		{name: "two colors", hand: []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorBlue, "7")}, want: 16},
		{name: "only wilds", hand: []domain.Card{wild, plusFour}, want: 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandCost(tt.hand); got != tt.want {
				t.Fatalf("HandCost() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		want int
	}{
		{name: "plain single color", hand: []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorRed, "7")}, want: -17},
		{name: "wild rewarded", hand: []domain.Card{card(domain.ColorRed, "5"), wild}, want: -4},
		{name: "two colors rewarded", hand: []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorBlue, "7")}, want: -14},
		{name: "action card", hand: []domain.Card{card(domain.ColorRed, domain.ValueSkip)}, want: -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandValue(tt.hand); got != tt.want {
				t.Fatalf("HandValue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCostAndValueDisagreeOnWilds(t *testing.T) {
	plain := []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorRed, "7")}
	withWild := []domain.Card{card(domain.ColorRed, "5"), wild}

	// Same size: the wild lowers the cost by special-minus-wild and raises the value.
	if HandCost(withWild) >= HandCost(plain) {
		t.Fatalf("wild hand cost %d should be below plain %d", HandCost(withWild), HandCost(plain))
	}
	if HandValue(withWild) <= HandValue(plain) {
		t.Fatalf("wild hand value %d should be above plain %d", HandValue(withWild), HandValue(plain))
	}

	oneColor := []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorRed, "7")}
	twoColors := []domain.Card{card(domain.ColorRed, "5"), card(domain.ColorBlue, "7")}
	if HandCost(twoColors) >= HandCost(oneColor) {
		t.Fatalf("color spread should lower cost")
	}
	if HandValue(twoColors) <= HandValue(oneColor) {
		t.Fatalf("color spread should raise value")
	}
}
