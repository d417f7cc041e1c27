package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"unobot/internal/bot"
	"unobot/internal/domain"
)

var ErrAgentMissing = errors.New("no agent for the player on turn")

// MatchResult summarizes one finished self-play game.
type MatchResult struct {
	ID     string
	Winner string // empty for a drawn game
	Reason EndReason
	Turns  int
	Draws  int
}

// Runner drives bot-vs-bot games through the Service.
type Runner struct {
	svc    *Service
	logger runtime.Logger

	// MaxTurns ends a game as a draw after this many actions.
	MaxTurns int
	// Observer, when set, receives every event in order.
	Observer func(game *domain.Game, ev Event)
}

// NewRunner constructs a Runner with the default turn cap.
func NewRunner(svc *Service, logger runtime.Logger) *Runner {
	return &Runner{svc: svc, logger: logger, MaxTurns: DefaultMaxTurns}
}

// RunMatch plays one game between the agents until someone wins, the deck is
// exhausted, the turn cap is hit, or ctx is cancelled.
func (r *Runner) RunMatch(ctx context.Context, agents []*bot.Agent) (MatchResult, error) {
	ids := make([]string, 0, len(agents))
	byID := make(map[string]*bot.Agent, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID)
		byID[a.ID] = a
	}

	game, events, err := r.svc.StartGame(ids)
	if err != nil {
		return MatchResult{}, fmt.Errorf("start match: %w", err)
	}
	r.emit(game, events)
	r.logger.Info("match %s started: top %s, %s to act", game.ID, game.TopCard, game.CurrentTurn)

	res := MatchResult{ID: game.ID}
	var reason EndReason
	for steps := 0; game.Phase == domain.PhasePlaying; steps++ {
		if err := ctx.Err(); err != nil {
			events, _ := r.svc.EndAsDraw(game, EndReasonCancelled)
			r.emit(game, events)
			return r.finish(game, res, EndReasonCancelled), err
		}
		if steps >= r.MaxTurns {
			events, _ := r.svc.EndAsDraw(game, EndReasonTurnLimit)
			r.emit(game, events)
			reason = EndReasonTurnLimit
			break
		}

		actor := game.CurrentTurn
		agent, ok := byID[actor]
		if !ok {
			return res, fmt.Errorf("%w: %s", ErrAgentMissing, actor)
		}
		move, err := agent.Play(game)
		if err != nil {
			return res, fmt.Errorf("agent %s: %w", actor, err)
		}

		if move.Draw {
			drawn, events, err := r.svc.DrawCard(game, actor)
			if err != nil {
				return res, fmt.Errorf("draw for %s: %w", actor, err)
			}
			res.Draws++
			r.emit(game, events)
			switch {
			case drawn.Exhausted:
				reason = EndReasonDeckExhausted
				r.logger.Info("match %s: deck exhausted", game.ID)
			case drawn.Playable:
				r.logger.Debug("match %s: %s drew playable %s", game.ID, agent.Name, drawn.Card)
			default:
				r.logger.Debug("match %s: %s drew", game.ID, agent.Name)
			}
			continue
		}

		events, err := r.svc.PlayCard(game, actor, move.Card, move.DeclaredColor)
		if err != nil {
			return res, fmt.Errorf("play %s for %s: %w", move.Card, actor, err)
		}
		r.emit(game, events)
		if tr := move.Trace; tr.DecidedBy != "" {
			r.logger.Debug("match %s: %s searched via %s, best-first expanded=%d pushed=%d, expectimax expanded=%d leaves=%d",
				game.ID, agent.Name, tr.DecidedBy, tr.BestFirst.Expanded, tr.BestFirst.Pushed, tr.Expectimax.Expanded, tr.Expectimax.Leaves)
		}
		if game.Phase == domain.PhaseEnded {
			reason = EndReasonWin
		}
		r.logger.Debug("match %s turn %d: %s played %s, color %s, %d left",
			game.ID, game.Turns, agent.Name, move.Card, game.CurrentColor, len(game.Players[actor].Hand))
	}

	return r.finish(game, res, reason), nil
}

func (r *Runner) finish(game *domain.Game, res MatchResult, reason EndReason) MatchResult {
	res.Winner = game.Winner
	res.Turns = game.Turns
	res.Reason = reason
	r.logger.Info("match %s ended after %d turns: winner=%q reason=%s", game.ID, res.Turns, res.Winner, reason)
	return res
}

func (r *Runner) emit(game *domain.Game, events []Event) {
	if r.Observer == nil {
		return
	}
	for _, ev := range events {
		r.Observer(game, ev)
	}
}
