package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"unobot/internal/bot"
)

// Environment keys read by SettingsFromEnv.
const (
	EnvBotLevel        = "UNO_BOT_LEVEL"
	EnvFrontierLimit   = "UNO_FRONTIER_LIMIT"
	EnvExpectimaxDepth = "UNO_EXPECTIMAX_DEPTH"
	EnvSeed            = "UNO_SEED"
	EnvGameConfig      = "UNO_GAME_CONFIG"
	EnvBotIdentities   = "UNO_BOT_IDENTITIES"
)

var ErrInvalidSetting = errors.New("invalid setting")

// Settings are the runtime knobs taken from the environment.
type Settings struct {
	Level bot.BotLevel
	// FrontierLimit and ExpectimaxDepth are zero when unset.
	FrontierLimit   int
	ExpectimaxDepth int
	// Seed is only meaningful when HasSeed is true.
	Seed    int64
	HasSeed bool

	GameConfigPath string
	IdentitiesPath string
}

// SettingsFromEnv reads Settings from env, which is either the process
// environment or the map Nakama passes as RUNTIME_CTX_ENV.
func SettingsFromEnv(env map[string]string) (Settings, error) {
	s := Settings{
		Level:          bot.BotLevelGod,
		GameConfigPath: env[EnvGameConfig],
		IdentitiesPath: env[EnvBotIdentities],
	}

	if v := strings.TrimSpace(env[EnvBotLevel]); v != "" {
		level, err := bot.ParseBotLevel(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s: %w", ErrInvalidSetting, EnvBotLevel, err)
		}
		s.Level = level
	}

	var err error
	if s.FrontierLimit, err = positiveInt(env, EnvFrontierLimit); err != nil {
		return Settings{}, err
	}
	if s.ExpectimaxDepth, err = positiveInt(env, EnvExpectimaxDepth); err != nil {
		return Settings{}, err
	}

	if v := strings.TrimSpace(env[EnvSeed]); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, EnvSeed, v)
		}
		s.Seed, s.HasSeed = seed, true
	}
	return s, nil
}

func positiveInt(env map[string]string, key string) (int, error) {
	v := strings.TrimSpace(env[key])
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalidSetting, key, v)
	}
	return n, nil
}

// Tuning applies the environment overrides on top of base.
func (s Settings) Tuning(base bot.Tuning) bot.Tuning {
	t := base
	if s.FrontierLimit > 0 {
		t.Search.FrontierLimit = s.FrontierLimit
	}
	if s.ExpectimaxDepth > 0 {
		t.Search.Depth = s.ExpectimaxDepth
	}
	return t
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// LoadEnvFile returns the process environment with the entries of a .env file
// added. Variables already set in the process win, as with godotenv.Load. An
// empty path skips the file.
func LoadEnvFile(path string) (map[string]string, error) {
	env := Environ()
	if path == "" {
		return env, nil
	}
	file, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	for k, v := range file {
		if _, set := env[k]; !set {
			env[k] = v
		}
	}
	return env, nil
}
