package nakama

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"unobot/internal/bot"
	"unobot/internal/config"
)

// InitModule wires the bot RPCs for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	h, err := handlerFromEnv(env, logger)
	if err != nil {
		return err
	}
	if err := RegisterRPCs(initializer, h); err != nil {
		return err
	}

	logger.Info("UNO bot module loaded. Default level: %s", h.level)
	return nil
}

func handlerFromEnv(env map[string]string, logger runtime.Logger) (*rpcHandler, error) {
	settings, err := config.SettingsFromEnv(env)
	if err != nil {
		return nil, err
	}

	tuning := settings.Tuning(bot.DefaultTuning)
	handSize, maxTurns := 0, 0
	if settings.GameConfigPath != "" {
		if err := config.LoadGameConfig(settings.GameConfigPath); err != nil {
			return nil, err
		}
		cfg := config.GetGameConfig()
		if tuning, err = cfg.Apply(tuning); err != nil {
			return nil, err
		}
		handSize, maxTurns = cfg.HandSize, cfg.MaxTurns
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	if settings.IdentitiesPath != "" {
		if err := bot.LoadIdentities(settings.IdentitiesPath); err != nil {
			return nil, err
		}
		logger.Info("Loaded %d bot identities.", len(bot.Identities()))
	}

	seed := time.Now().UnixNano()
	if settings.HasSeed {
		seed = settings.Seed
	}
	h := newRPCHandler(settings.Level, tuning, rand.New(rand.NewSource(seed)))
	if handSize > 0 {
		h.handSize = handSize
	}
	if maxTurns > 0 {
		h.maxTurns = maxTurns
	}
	return h, nil
}
