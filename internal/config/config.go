// Package config defines service configuration and its loading.
package config

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Signature cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Storage selects where assessments and correlations live.
	Storage     string `koanf:"storage"`
	PostgresDSN string `koanf:"postgres_dsn"`

	// Cache selects where the population signature is kept. Redis shares it
	// across processes.
	Cache         string `koanf:"cache"`
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
	RedisKey      string `koanf:"redis_key"`

	// ModelPath points at the productivity model YAML. A missing file
	// disables predicted scores.
	ModelPath string `koanf:"model_path"`

	// MinAbsR and MinConfidence are the default correlation query filter.
	MinAbsR       float64 `koanf:"min_abs_r"`
	MinConfidence float64 `koanf:"min_confidence"`

	// CareerLimit is the default subject count; MaxCareerLimit caps requests.
	CareerLimit    int `koanf:"career_limit"`
	MaxCareerLimit int `koanf:"max_career_limit"`

	// SeedPopulation and SeedRandom drive the synthetic population generator.
	SeedPopulation int   `koanf:"seed_population"`
	SeedRandom     int64 `koanf:"seed_random"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		Storage:        StorageMemory,
		Cache:          CacheMemory,
		RedisKey:       "studytrack:correlations:signature",
		ModelPath:      "configs/productivity_model.yaml",
		MinAbsR:        0.3,
		MinConfidence:  95,
		CareerLimit:    3,
		MaxCareerLimit: 10,
		SeedPopulation: 40,
		SeedRandom:     42,
	}
}
