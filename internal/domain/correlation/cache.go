// Package correlation rebuilds the population-wide metric x target
// correlation matrix and gates that rebuild behind a cheap signature check.
package correlation

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/studytrack/internal/domain/model"
)

// Signature summarizes a population cheaply: its size and the newest
// creation time in epoch seconds.
type Signature struct {
	Count  int
	Newest int64
}

// SignatureOf computes the signature of population.
func SignatureOf(population []model.Assessment) Signature {
	sig := Signature{Count: len(population)}
	for _, a := range population {
		if ts := a.CreatedAt.Unix(); ts > sig.Newest {
			sig.Newest = ts
		}
	}
	return sig
}

// String renders the signature as "count:newest".
func (s Signature) String() string { return fmt.Sprintf("%d:%d", s.Count, s.Newest) }

// Gate decides whether a recompute is needed for a signature.
type Gate interface {
	// ShouldRecompute reports whether sig differs from the last seen
	// signature and records sig as seen. The first call always reports true.
	ShouldRecompute(ctx context.Context, sig Signature) bool

	// Invalidate forgets the last seen signature so the next call recomputes.
	Invalidate(ctx context.Context)
}

// Cache is an in-process Gate. The zero value is ready to use.
type Cache struct {
	mu   sync.Mutex
	last Signature
	warm bool
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{} }

// ShouldRecompute compares and swaps the stored signature under one lock.
func (c *Cache) ShouldRecompute(_ context.Context, sig Signature) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.warm && c.last == sig {
		return false
	}
	c.last = sig
	c.warm = true
	return true
}

// Invalidate resets the cache to cold.
func (c *Cache) Invalidate(_ context.Context) {
	c.mu.Lock()
	c.warm = false
	c.last = Signature{}
	c.mu.Unlock()
}
