package bot

import (
	"unobot/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current game state.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player, ok := game.Players[a.ID]
	if !ok {
		// Agent is not part of this game
		return Move{Draw: true}, nil
	}

	move, err := a.Strategy.CalculateMove(TurnView{
		Hand:         player.Hand,
		TopCard:      game.TopCard,
		CurrentColor: game.CurrentColor,
	})
	if err != nil {
		return Move{Draw: true}, err
	}
	return move, nil
}
