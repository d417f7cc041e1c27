package internal

import "unobot/internal/domain"

// Rand is the randomness a search needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// ChooseColor picks the color to declare after a wild card: the most frequent
// non-wild color in hand, ties going to the color seen first. A hand of only
// wild cards gets a uniformly random base color.
func ChooseColor(hand []domain.Card, rng Rand) domain.Color {
	counts := make(map[domain.Color]int, 4)
	var order []domain.Color
	for _, c := range hand {
		if c.Color == domain.ColorWild {
			continue
		}
		if _, seen := counts[c.Color]; !seen {
			order = append(order, c.Color)
		}
		counts[c.Color]++
	}

	if len(order) == 0 {
		return domain.BaseColors[rng.Intn(len(domain.BaseColors))]
	}

	best := order[0]
	for _, color := range order[1:] {
		if counts[color] > counts[best] {
			best = color
		}
	}
	return best
}

// colorAfter mirrors how a played card changes the active color during search.
func colorAfter(played domain.Card, remaining []domain.Card, current domain.Color, rng Rand) domain.Color {
	if played.IsWildCard() {
		return ChooseColor(remaining, rng)
	}
	if played.Color != domain.ColorWild {
		return played.Color
	}
	return current
}
