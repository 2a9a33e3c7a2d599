// Package inflight keeps at most one remix outstanding per client key.
package inflight

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 2 * time.Minute
	keyPrefix  = "remixer:inflight:"
)

// Guard hands out an owner token per lock. Release only removes the lock
// when the token still matches, so a holder whose lock expired cannot free
// a lock taken by a later request.
type Guard interface {
	// Acquire reports false when key already holds an outstanding request.
	Acquire(ctx context.Context, key string) (token string, acquired bool, err error)
	Release(ctx context.Context, key, token string) error
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard shares the lock between API replicas. Locks expire after ttl so a
// crashed request does not block its client forever.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisGuard{client: client, ttl: ttl}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, keyPrefix+key, token, g.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (g *RedisGuard) Release(ctx context.Context, key, token string) error {
	return releaseScript.Run(ctx, g.client, []string{keyPrefix + key}, token).Err()
}

type MemoryGuard struct {
	mu   sync.Mutex
	busy map[string]string
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{busy: make(map[string]string)}
}

func (g *MemoryGuard) Acquire(ctx context.Context, key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.busy[key]; ok {
		return "", false, nil
	}
	token := uuid.NewString()
	g.busy[key] = token
	return token, true, nil
}

func (g *MemoryGuard) Release(ctx context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy[key] == token {
		delete(g.busy, key)
	}
	return nil
}
