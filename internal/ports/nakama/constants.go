package nakama

const (
	// RpcBotMove asks a bot for its move given a hand and the discard top.
	RpcBotMove = "uno_bot_move"
	// RpcChooseColor asks for the color to declare after a wild card.
	RpcChooseColor = "uno_choose_color"
	// RpcSimulateMatch runs one bot-vs-bot match on the server and reports the result.
	RpcSimulateMatch = "uno_simulate_match"
)

// Nakama error codes returned from RPCs.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
