package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/gbalance/balance"
)

const (
	envPrefix      = "GBALANCE_"
	configFileName = "gbalance.yaml"
)

// Run modes.
const (
	ModeOptimize = "optimize"
	ModeDecision = "decision"
	ModeLP       = "lp"
)

// cliConfig is the fully resolved tool configuration. Priority, lowest to
// highest: built-in defaults, gbalance.yaml in the working directory, then
// GBALANCE_* environment variables.
type cliConfig struct {
	// Input is the path of the instance JSON file; "-" reads stdin.
	Input string `koanf:"input"`

	// Mode selects the entry point: optimize, decision, or lp.
	Mode string `koanf:"mode"`

	// Target is the decision target makespan; required in decision mode.
	Target float64 `koanf:"target"`

	// Tolerance is the relative binary-search stopping width in optimize
	// mode.
	Tolerance float64 `koanf:"tolerance"`

	// LogLevel is a zap level string: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

func loadConfig() (*cliConfig, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"input":     "-",
		"mode":      ModeOptimize,
		"target":    0.0,
		"tolerance": balance.DefaultSearchTol,
		"log_level": "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	if _, err := os.Stat(configFileName); err == nil {
		if err = k.Load(file.Provider(configFileName), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	var cfg cliConfig
	if err = k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *cliConfig) validate() error {
	switch c.Mode {
	case ModeOptimize, ModeDecision, ModeLP:
	default:
		return fmt.Errorf("unknown mode %q (want optimize, decision, or lp)", c.Mode)
	}
	if c.Mode == ModeDecision && c.Target <= 0 {
		return errors.New("decision mode needs a positive target")
	}
	if c.Tolerance <= 0 {
		return errors.New("tolerance must be positive")
	}

	return nil
}
