package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	EnvStage               = "STAGE"
	EnvMaxPlacementRetries = "MAX_PLACEMENT_RETRIES"
	EnvRepeatAttackRule    = "REPEAT_ATTACK_RULE"
)

type Config struct {
	Stage               string
	MaxPlacementRetries int
	RepeatAttackRule    mb.RepeatAttackRule
}

// Load reads the configuration from the environment. Outside of prod the
// variables in envFile are loaded first when the file exists; variables
// already set in the environment win.
func Load(envFile string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd && envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Config{Stage: os.Getenv(EnvStage)}
	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	if retriesEnv := os.Getenv(EnvMaxPlacementRetries); retriesEnv != "" {
		retries, err := strconv.Atoi(retriesEnv)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMaxPlacementRetries, err)
		}
		if retries < 0 {
			return Config{}, fmt.Errorf("%s must not be negative, got: %d", EnvMaxPlacementRetries, retries)
		}
		cfg.MaxPlacementRetries = retries
	}

	rule, err := mb.ParseRepeatAttackRule(os.Getenv(EnvRepeatAttackRule))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvRepeatAttackRule, err)
	}
	cfg.RepeatAttackRule = rule

	return cfg, nil
}
