package app

const (
	// PlayersPerGame is fixed: the turn rules assume a single opponent.
	PlayersPerGame = 2
	// DefaultHandSize is the number of cards dealt to each player.
	DefaultHandSize = 7
	// DefaultMaxTurns caps a self-play match before it is declared a draw.
	DefaultMaxTurns = 1000
)
