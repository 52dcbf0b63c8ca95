package repository

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const denylistKeyPrefix = "denylist:"

// TokenDenylist records revoked token IDs until the token would have expired anyway.
type TokenDenylist interface {
	Add(ctx context.Context, tokenID string, until time.Time) error
	Contains(ctx context.Context, tokenID string) (bool, error)
}

// RedisDenylist stores revoked token IDs as expiring Redis keys, shared by every API instance.
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist creates a RedisDenylist on top of an existing client.
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

// Add denylists tokenID until the given time. Already-expired tokens are skipped.
func (d *RedisDenylist) Add(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err()
}

// Contains reports whether tokenID is currently denylisted.
func (d *RedisDenylist) Contains(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryDenylist is a process-local denylist for single-instance deployments and tests.
type MemoryDenylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryDenylist creates an empty MemoryDenylist.
func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Add denylists tokenID until the given time and drops entries that have lapsed.
func (d *MemoryDenylist) Add(_ context.Context, tokenID string, until time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for id, exp := range d.entries {
		if !exp.After(now) {
			delete(d.entries, id)
		}
	}

	if existing, ok := d.entries[tokenID]; ok && existing.After(until) {
		return nil
	}
	if until.After(now) {
		d.entries[tokenID] = until
	}
	return nil
}

// Contains reports whether tokenID is currently denylisted.
func (d *MemoryDenylist) Contains(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	exp, ok := d.entries[tokenID]
	return ok && exp.After(d.now()), nil
}
