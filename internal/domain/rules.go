package domain

// PlayEffect describes what a played card does to the turn order in a
// two-player game.
type PlayEffect struct {
	// DrawPenalty is the number of cards the opponent must draw. The turn
	// still passes to them unless OpponentSkipped is set.
	DrawPenalty int
	// OpponentSkipped means the player who played the card moves again.
	OpponentSkipped bool
	// NeedsColor means the player must declare the next active color.
	NeedsColor bool
}

// EffectOf returns the two-player effect of playing c.
// Reverse behaves as Skip because there is no third seat to reverse towards.
func EffectOf(c Card) PlayEffect {
	switch {
	case c.IsSkip(), c.IsReverse():
		return PlayEffect{OpponentSkipped: true}
	case c.IsPlusTwo():
		return PlayEffect{DrawPenalty: 2, OpponentSkipped: true}
	case c.IsPlusFour():
		return PlayEffect{DrawPenalty: 4, NeedsColor: true}
	case c.IsWild():
		return PlayEffect{NeedsColor: true}
	default:
		return PlayEffect{}
	}
}

// NextColor returns the active color after c is played. declared is used only
// for wild cards.
func NextColor(c Card, current, declared Color) Color {
	if c.IsWildCard() {
		return declared
	}
	if c.Color != ColorWild {
		return c.Color
	}
	return current
}
