package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment names read by Load.
const (
	EnvPrefix = "STUDYTRACK_"
	EnvFile   = "STUDYTRACK_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if STUDYTRACK_CONFIG is set
//  3. env (prefix STUDYTRACK_)
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(EnvFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// STUDYTRACK_MIN_ABS_R -> min_abs_r. Keys stay flat so underscores
	// match the koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.Storage != StorageMemory && c.Storage != StoragePostgres:
		return fmt.Errorf("%w: storage must be %q or %q, got %q", ErrInvalidConfig, StorageMemory, StoragePostgres, c.Storage)
	case c.Storage == StoragePostgres && c.PostgresDSN == "":
		return fmt.Errorf("%w: postgres storage requires postgres_dsn", ErrInvalidConfig)
	case c.Cache != CacheMemory && c.Cache != CacheRedis:
		return fmt.Errorf("%w: cache must be %q or %q, got %q", ErrInvalidConfig, CacheMemory, CacheRedis, c.Cache)
	case c.Cache == CacheRedis && c.RedisAddr == "":
		return fmt.Errorf("%w: redis cache requires redis_addr", ErrInvalidConfig)
	case c.MinAbsR < 0 || c.MinAbsR > 1:
		return fmt.Errorf("%w: min_abs_r must be in [0, 1]", ErrInvalidConfig)
	case c.MinConfidence < 0 || c.MinConfidence > 100:
		return fmt.Errorf("%w: min_confidence must be in [0, 100]", ErrInvalidConfig)
	case c.MaxCareerLimit < 1:
		return fmt.Errorf("%w: max_career_limit must be positive", ErrInvalidConfig)
	case c.CareerLimit < 1 || c.CareerLimit > c.MaxCareerLimit:
		return fmt.Errorf("%w: career_limit must be in [1, max_career_limit]", ErrInvalidConfig)
	case c.SeedPopulation < 0:
		return fmt.Errorf("%w: seed_population must not be negative", ErrInvalidConfig)
	}
	return nil
}
