package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mgpai22/substudio/internal/readability"
	"github.com/mgpai22/substudio/internal/timecode"
)

const (
	EnvWarnCPS     = "SUBSTUDIO_WARN_CPS"
	EnvErrorCPS    = "SUBSTUDIO_ERROR_CPS"
	EnvTimeLayout  = "SUBSTUDIO_TIME_LAYOUT"
	EnvConcurrency = "SUBSTUDIO_CONCURRENCY"
)

// Config holds settings shared by all commands.
type Config struct {
	Thresholds  readability.Thresholds
	TimeLayout  timecode.Layout
	Concurrency int
}

func Default() Config {
	return Config{
		Thresholds:  readability.DefaultThresholds,
		TimeLayout:  timecode.LayoutCentis,
		Concurrency: 4,
	}
}

// Load reads a .env file when one is present, then applies environment
// overrides on top of the defaults.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...) // best-effort: missing .env is fine
	return FromEnv(os.Getenv)
}

// FromEnv builds a config from a variable lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	warnCPS, err := intFromEnv(getenv, EnvWarnCPS, cfg.Thresholds.Warn)
	if err != nil {
		return cfg, err
	}
	errorCPS, err := intFromEnv(getenv, EnvErrorCPS, cfg.Thresholds.Error)
	if err != nil {
		return cfg, err
	}
	// error is raised to warn, as with the command-line flags
	cfg.Thresholds = readability.NewThresholds(warnCPS, errorCPS)

	if cfg.Concurrency, err = intFromEnv(getenv, EnvConcurrency, cfg.Concurrency); err != nil {
		return cfg, err
	}
	if v := strings.TrimSpace(getenv(EnvTimeLayout)); v != "" {
		if cfg.TimeLayout, err = timecode.ParseLayout(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTimeLayout, err)
		}
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("config: concurrency must be positive, got %d", c.Concurrency)
	}
	if _, err := timecode.ParseLayout(string(c.TimeLayout)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func intFromEnv(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
