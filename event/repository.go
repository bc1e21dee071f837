package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Repository = (*redisRepository)(nil)
var _ Repository = (*memoryRepository)(nil)

// Repository remembers which events were already handled so redelivered
// messages are processed once.
type Repository interface {
	// MarkProcessed records id and reports whether it was new.
	MarkProcessed(ctx context.Context, id string) (bool, error)
}

type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository keeps processed ids for ttl.
func NewRedisRepository(client *redis.Client, ttl time.Duration) Repository {
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisRepository) MarkProcessed(ctx context.Context, id string) (bool, error) {
	ok, err := r.client.SetNX(ctx, "storefront:event:"+id, 1, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	return ok, nil
}

type memoryRepository struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryRepository() Repository {
	return &memoryRepository{seen: make(map[string]struct{})}
}

func (m *memoryRepository) MarkProcessed(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seen[id]; ok {
		return false, nil
	}
	m.seen[id] = struct{}{}
	return true, nil
}
