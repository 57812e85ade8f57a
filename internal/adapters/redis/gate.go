// Package redis implements the correlation recompute gate on Redis so that
// several service processes share one last-seen population signature.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/studytrack/internal/domain/correlation"
	"github.com/okian/studytrack/pkg/logger"
	"github.com/okian/studytrack/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// DefaultKey holds the last seen signature.
const DefaultKey = "studytrack:correlations:signature"

// Config holds Redis connection configuration.
type Config struct {
	Addr        string
	Password    string
	DB          int
	Key         string
	TTL         time.Duration // zero keeps the key forever
	DialTimeout time.Duration
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the gate logger.
func WithLogger(l logger.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.log = l
		}
	}
}

// Gate is a correlation.Gate backed by a Redis string.
//
// ShouldRecompute uses SET ... GET, which swaps the stored signature and
// returns the previous one atomically on the server. When Redis cannot be
// reached the gate answers true: a redundant recompute is harmless, a
// skipped one serves stale correlations.
type Gate struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	log    logger.Logger
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg Config, opts ...Option) (*Gate, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: address is required")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: failed to ping %s: %w", cfg.Addr, err)
	}
	return NewWithClient(client, cfg.Key, cfg.TTL, opts...), nil
}

// NewWithClient wraps an existing client. An empty key uses DefaultKey.
func NewWithClient(client *redis.Client, key string, ttl time.Duration, opts ...Option) *Gate {
	if key == "" {
		key = DefaultKey
	}
	g := &Gate{client: client, key: key, ttl: ttl, log: logger.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ShouldRecompute swaps in sig and reports whether it differs from the
// previous value.
func (g *Gate) ShouldRecompute(ctx context.Context, sig correlation.Signature) bool {
	prev, err := g.client.SetArgs(ctx, g.key, sig.String(), redis.SetArgs{Get: true, TTL: g.ttl}).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return true
	case err != nil:
		metrics.RecordErrorByComponent("redis_gate", "set")
		g.log.Warn(ctx, "signature swap failed, recomputing", logger.Error(err))
		return true
	}
	return prev != sig.String()
}

// Invalidate deletes the stored signature.
func (g *Gate) Invalidate(ctx context.Context) {
	if err := g.client.Del(ctx, g.key).Err(); err != nil {
		metrics.RecordErrorByComponent("redis_gate", "del")
		g.log.Warn(ctx, "signature invalidate failed", logger.Error(err))
	}
}

// Close closes the client.
func (g *Gate) Close() error { return g.client.Close() }

var _ correlation.Gate = (*Gate)(nil)
