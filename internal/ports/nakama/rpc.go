package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"unobot/internal/app"
	"unobot/internal/bot"
)

// lockedRand serializes access to a *rand.Rand; Nakama runs RPCs concurrently.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// rpcHandler serves the bot RPCs with a shared tuning and random source.
type rpcHandler struct {
	level  bot.BotLevel
	tuning bot.Tuning
	rng    *lockedRand

	handSize int
	maxTurns int
}

func newRPCHandler(level bot.BotLevel, tuning bot.Tuning, rng *rand.Rand) *rpcHandler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &rpcHandler{
		level:    level,
		tuning:   tuning,
		rng:      &lockedRand{rng: rng},
		handSize: app.DefaultHandSize,
		maxTurns: app.DefaultMaxTurns,
	}
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer, h *rpcHandler) error {
	if err := initializer.RegisterRpc(RpcBotMove, h.botMove); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcChooseColor, h.chooseColor); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcSimulateMatch, h.simulateMatch)
}

// levelFor picks the requested level, then the caller's roster level, then the default.
func (h *rpcHandler) levelFor(ctx context.Context, requested string) (bot.BotLevel, error) {
	if requested != "" {
		return bot.ParseBotLevel(requested)
	}
	if userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string); userID != "" {
		if level, ok := bot.LevelFor(userID); ok {
			return level, nil
		}
	}
	return h.level, nil
}

// botMove handles the RPC call returning the bot's move for a turn.
// Payload: {"hand": [...], "top_card": {...}, "current_color": "Red", "level": "god"}
func (h *rpcHandler) botMove(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req botMoveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	view, err := viewFromRequest(req)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	level, err := h.levelFor(ctx, req.Level)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	brain, err := bot.NewBrain(level, h.tuning, h.rng)
	if err != nil {
		logger.Error("botMove: failed to create %s brain: %v", level, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	move, err := brain.CalculateMove(view)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	logger.Debug("botMove: level=%s hand=%d top=%s draw=%t card=%s decided_by=%q bf_expanded=%d bf_pushed=%d ex_expanded=%d ex_leaves=%d",
		level, len(view.Hand), view.TopCard, move.Draw, move.Card, move.Trace.DecidedBy,
		move.Trace.BestFirst.Expanded, move.Trace.BestFirst.Pushed, move.Trace.Expectimax.Expanded, move.Trace.Expectimax.Leaves)
	b, _ := json.Marshal(moveToResponse(move))
	return string(b), nil
}

// chooseColor handles the RPC call returning the color to declare.
// Payload: {"hand": [...]}, the cards left after playing the wild.
func (h *rpcHandler) chooseColor(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req chooseColorRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	hand, err := cardsFromWire(req.Hand)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	b, _ := json.Marshal(chooseColorResponse{Color: string(bot.ChooseColor(hand, h.rng))})
	return string(b), nil
}

// simulateMatch runs one bot-vs-bot match and returns its summary.
// Payload: {"levels": ["god", "good"], "seed": 7}
func (h *rpcHandler) simulateMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req simulateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if len(req.Levels) != app.PlayersPerGame {
		return "", runtime.NewError(fmt.Sprintf("exactly %d levels required", app.PlayersPerGame), codeInvalidArgument)
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	agents := make([]*bot.Agent, 0, len(req.Levels))
	for i, name := range req.Levels {
		level, err := bot.ParseBotLevel(name)
		if err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		brain, err := bot.NewBrain(level, h.tuning, rand.New(rand.NewSource(rng.Int63())))
		if err != nil {
			logger.Error("simulateMatch: failed to create %s brain: %v", level, err)
			return "", runtime.NewError("Internal error", codeInternal)
		}
		id := fmt.Sprintf("bot-%d-%s", i+1, level)
		agents = append(agents, &bot.Agent{ID: id, Name: id, Strategy: brain})
	}

	svc := app.NewService(rand.New(rand.NewSource(rng.Int63())))
	svc.HandSize = h.handSize
	runner := app.NewRunner(svc, logger)
	runner.MaxTurns = h.maxTurns

	res, err := runner.RunMatch(ctx, agents)
	if err != nil {
		logger.Error("simulateMatch: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	b, _ := json.Marshal(simulateResponse{
		MatchID: res.ID,
		Winner:  res.Winner,
		Reason:  string(res.Reason),
		Turns:   res.Turns,
		Draws:   res.Draws,
	})
	return string(b), nil
}
