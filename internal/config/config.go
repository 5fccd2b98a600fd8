// Package config loads the optional golfstats YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for the configuration.
const (
	DefaultUnits            = UnitsMetric
	DefaultLogLevel         = "warn"
	DefaultHistogramBuckets = 8
	DefaultCoachModel       = "claude-haiku-4-5-20251001"
	DefaultCoachAPIKeyEnv   = "ANTHROPIC_API_KEY"
	DefaultCoachMaxTokens   = 1024
)

// Display units.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Config is the parsed config.yaml.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `yaml:"db_path"`

	// Units is one of: metric | imperial. Only display is affected.
	Units string `yaml:"units"`

	// LogLevel is a zap level name: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// HistogramBuckets is the bucket count for distance histograms.
	HistogramBuckets int `yaml:"histogram_buckets"`

	Coach CoachConfig `yaml:"coach"`
}

// CoachConfig controls the AI coaching command.
type CoachConfig struct {
	Model string `yaml:"model"`

	// APIKeyEnv is the name of the environment variable that holds the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	MaxTokens int64 `yaml:"max_tokens"`
}

// APIKey returns the coach API key resolved from the environment.
func (c CoachConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// Load reads the config file at path. A missing file yields the defaults.
// A .env file in the same directory is loaded into the environment first;
// variables already set are left alone.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(filepath.Dir(path), ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Units:            DefaultUnits,
		LogLevel:         DefaultLogLevel,
		HistogramBuckets: DefaultHistogramBuckets,
		Coach: CoachConfig{
			Model:     DefaultCoachModel,
			APIKeyEnv: DefaultCoachAPIKeyEnv,
			MaxTokens: DefaultCoachMaxTokens,
		},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	switch cfg.Units {
	case UnitsMetric, UnitsImperial:
	default:
		return fmt.Errorf("units %q unknown: want metric|imperial", cfg.Units)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q unknown: want debug|info|warn|error", cfg.LogLevel)
	}
	if cfg.HistogramBuckets < 1 || cfg.HistogramBuckets > 50 {
		return fmt.Errorf("histogram_buckets %d is out of range [1, 50]", cfg.HistogramBuckets)
	}
	if cfg.Coach.Model == "" {
		return fmt.Errorf("coach.model must not be empty")
	}
	if cfg.Coach.MaxTokens <= 0 {
		return fmt.Errorf("coach.max_tokens must be positive")
	}
	return nil
}
