package domain

import (
	"sort"
	"strings"
)

// CloneHand returns an independent copy of hand.
func CloneHand(hand []Card) []Card {
	out := make([]Card, len(hand))
	copy(out, hand)
	return out
}

// RemoveCard returns a copy of hand without the first card equal to c.
// The input slice is never modified.
func RemoveCard(hand []Card, c Card) []Card {
	out := make([]Card, 0, len(hand))
	removed := false
	for _, card := range hand {
		if !removed && card == c {
			removed = true
			continue
		}
		out = append(out, card)
	}
	return out
}

// ContainsCard reports whether hand holds at least one card equal to c.
func ContainsCard(hand []Card, c Card) bool {
	for _, card := range hand {
		if card == c {
			return true
		}
	}
	return false
}

// PlayableCards returns the cards of hand that can go on top given activeColor,
// preserving hand order and duplicates.
func PlayableCards(hand []Card, top Card, activeColor Color) []Card {
	var playable []Card
	for _, card := range hand {
		if card.PlayableOn(top, activeColor) {
			playable = append(playable, card)
		}
	}
	return playable
}

// HandKey identifies the multiset of cards in hand, independent of order.
func HandKey(hand []Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = string(c.Color) + ":" + string(c.Value)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// CountSpecial counts action and wild cards.
func CountSpecial(hand []Card) int {
	n := 0
	for _, c := range hand {
		if c.IsSpecial() {
			n++
		}
	}
	return n
}

// CountWildCards counts Wild and +4 cards.
func CountWildCards(hand []Card) int {
	n := 0
	for _, c := range hand {
		if c.IsWildCard() {
			n++
		}
	}
	return n
}

// DistinctColors counts the non-wild colors present in hand.
func DistinctColors(hand []Card) int {
	seen := make(map[Color]struct{}, 4)
	for _, c := range hand {
		if c.Color != ColorWild {
			seen[c.Color] = struct{}{}
		}
	}
	return len(seen)
}

// ValidateHand returns the first vocabulary error in hand, if any.
func ValidateHand(hand []Card) error {
	for _, c := range hand {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
