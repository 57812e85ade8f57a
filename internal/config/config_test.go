package config_test

import (
	"errors"
	"testing"

	"github.com/okian/studytrack/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.Storage, convey.ShouldEqual, config.StorageMemory)
			convey.So(cfg.Cache, convey.ShouldEqual, config.CacheMemory)
			convey.So(cfg.RedisKey, convey.ShouldEqual, "studytrack:correlations:signature")
			convey.So(cfg.MinAbsR, convey.ShouldEqual, 0.3)
			convey.So(cfg.MinConfidence, convey.ShouldEqual, 95)
			convey.So(cfg.CareerLimit, convey.ShouldEqual, 3)
			convey.So(cfg.MaxCareerLimit, convey.ShouldEqual, 10)
			convey.So(cfg.SeedPopulation, convey.ShouldEqual, 40)
			convey.So(cfg.SeedRandom, convey.ShouldEqual, 42)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty addr":             func(c *config.Config) { c.Addr = " " },
		"unknown storage":        func(c *config.Config) { c.Storage = "sqlite" },
		"postgres without dsn":   func(c *config.Config) { c.Storage = config.StoragePostgres },
		"unknown cache":          func(c *config.Config) { c.Cache = "memcached" },
		"redis without addr":     func(c *config.Config) { c.Cache = config.CacheRedis },
		"min_abs_r above one":    func(c *config.Config) { c.MinAbsR = 1.5 },
		"negative confidence":    func(c *config.Config) { c.MinConfidence = -1 },
		"zero career limit":      func(c *config.Config) { c.CareerLimit = 0 },
		"limit above the cap":    func(c *config.Config) { c.CareerLimit = 11 },
		"zero max career limit":  func(c *config.Config) { c.MaxCareerLimit = 0 },
		"negative seed quantity": func(c *config.Config) { c.SeedPopulation = -1 },
	}

	convey.Convey("Given an otherwise valid config", t, func() {
		for name, mutate := range cases {
			convey.Convey("It rejects "+name, func() {
				cfg := config.New()
				mutate(cfg)
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}

		convey.Convey("Backends with their addresses are accepted", func() {
			cfg := config.New()
			cfg.Storage, cfg.PostgresDSN = config.StoragePostgres, "postgres://localhost/studytrack"
			cfg.Cache, cfg.RedisAddr = config.CacheRedis, "localhost:6379"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
