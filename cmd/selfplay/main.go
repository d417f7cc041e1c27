// Command selfplay runs bot-vs-bot UNO matches and prints a summary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"unobot/internal/app"
	"unobot/internal/bot"
	"unobot/internal/config"
	"unobot/internal/ports/logging"
)

// CLI flags
var (
	matches        int
	levelOne       string
	levelTwo       string
	seed           int64
	envPath        string
	configPath     string
	identitiesPath string
	logLevel       string
	verbose        bool
	noColor        bool
)

func init() {
	flag.IntVar(&matches, "matches", 10, "Number of matches to play")
	flag.StringVar(&levelOne, "p1", "god", "Level of the first player (good, smart, god)")
	flag.StringVar(&levelTwo, "p2", "good", "Level of the second player (good, smart, god)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = UNO_SEED or current time)")
	flag.StringVar(&envPath, "env", "", "Optional .env file with UNO_* settings")
	flag.StringVar(&configPath, "config", "", "Game config JSON (default: UNO_GAME_CONFIG)")
	flag.StringVar(&identitiesPath, "identities", "", "Bot identities JSON (default: UNO_BOT_IDENTITIES)")
	flag.StringVar(&logLevel, "loglevel", "info", "Set logging level (debug, info, warn, error)")
	flag.BoolVar(&verbose, "verbose", false, "Print every play")
	flag.BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func main() {
	flag.Parse()
	if noColor {
		color.NoColor = true
	}

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadEnvFile(envPath)
	if err != nil {
		return err
	}
	settings, err := config.SettingsFromEnv(env)
	if err != nil {
		return err
	}
	logger := logging.NewText(os.Stderr, logLevel, !color.NoColor)

	tuning := settings.Tuning(bot.DefaultTuning)
	svcHandSize, maxTurns := app.DefaultHandSize, app.DefaultMaxTurns
	if configPath == "" {
		configPath = settings.GameConfigPath
	}
	if configPath != "" {
		if err := config.LoadGameConfig(configPath); err != nil {
			return err
		}
		cfg := config.GetGameConfig()
		if tuning, err = cfg.Apply(tuning); err != nil {
			return err
		}
		if cfg.HandSize > 0 {
			svcHandSize = cfg.HandSize
		}
		if cfg.MaxTurns > 0 {
			maxTurns = cfg.MaxTurns
		}
	}

	if identitiesPath == "" {
		identitiesPath = settings.IdentitiesPath
	}
	if identitiesPath != "" {
		if err := bot.LoadIdentities(identitiesPath); err != nil {
			return err
		}
	}

	seats, err := seatPlayers(levelOne, levelTwo, bot.Identities())
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
		if settings.HasSeed {
			seed = settings.Seed
		}
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("Playing %d matches, seed %d", matches, seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum := newSummary(seats)
	for i := 0; i < matches; i++ {
		agents := make([]*bot.Agent, 0, len(seats))
		for _, s := range seats {
			brain, err := bot.NewBrain(s.Level, tuning, rand.New(rand.NewSource(rng.Int63())))
			if err != nil {
				return err
			}
			agents = append(agents, &bot.Agent{ID: s.ID, Name: s.Name, Strategy: brain})
		}

		svc := app.NewService(rand.New(rand.NewSource(rng.Int63())))
		svc.HandSize = svcHandSize
		runner := app.NewRunner(svc, logger.WithField("match_no", i+1))
		runner.MaxTurns = maxTurns
		if verbose {
			runner.Observer = newPrinter(os.Stdout, seats).Print
		}

		res, err := runner.RunMatch(ctx, agents)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("Interrupted after %d matches", sum.Matches)
				break
			}
			return err
		}
		sum.Add(res)
	}

	sum.Render(os.Stdout)
	return ctx.Err()
}
