package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/studytrack/internal/adapters/postgres"
	redisgate "github.com/okian/studytrack/internal/adapters/redis"
	"github.com/okian/studytrack/internal/adapters/repository"
	service "github.com/okian/studytrack/internal/app"
	"github.com/okian/studytrack/internal/config"
	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/okian/studytrack/pkg/logger"
)

// backend is a started service plus the resources behind it.
type backend struct {
	svc    *service.Service
	store  repository.Store
	closes []func() error
}

// Close stops the service and releases the store and gate.
func (b *backend) Close() error {
	b.svc.Stop()
	var errs []error
	for i := len(b.closes) - 1; i >= 0; i-- {
		errs = append(errs, b.closes[i]())
	}
	return errors.Join(errs...)
}

// openBackend wires the configured store and signature gate into a started
// service.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	log := logger.Get()
	b := &backend{}

	switch cfg.Storage {
	case config.StoragePostgres:
		s, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.WithLogger(log.Named("postgres")))
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		b.store = s
	default:
		b.store = repository.NewMemory(ctx, repository.WithLogger(log.Named("repository")))
	}
	b.closes = append(b.closes, b.store.Close)

	var gate correlation.Gate = correlation.NewCache()
	if cfg.Cache == config.CacheRedis {
		g, err := redisgate.New(ctx, redisgate.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.RedisKey,
		}, redisgate.WithLogger(log.Named("redis")))
		if err != nil {
			_ = b.store.Close()
			return nil, fmt.Errorf("open redis: %w", err)
		}
		gate = g
		b.closes = append(b.closes, g.Close)
	}

	b.svc = service.New(
		service.WithLogger(log),
		service.WithStore(b.store),
		service.WithGate(gate),
		service.WithModelPath(cfg.ModelPath),
		service.WithCorrelationFilter(cfg.MinAbsR, cfg.MinConfidence),
		service.WithCareerLimits(cfg.CareerLimit, cfg.MaxCareerLimit),
	)
	if err := b.svc.Start(ctx); err != nil {
		for i := len(b.closes) - 1; i >= 0; i-- {
			_ = b.closes[i]()
		}
		return nil, fmt.Errorf("start service: %w", err)
	}
	log.Info(ctx, "backend ready",
		logger.String("storage", cfg.Storage),
		logger.String("cache", cfg.Cache),
	)
	return b, nil
}
