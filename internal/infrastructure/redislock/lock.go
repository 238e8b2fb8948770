package redislock

import (
	"context"
	"fmt"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// luaReleaseIfMatch deletes the lock only when the stored token still matches,
// so a slow holder cannot release a lock that already expired and was retaken.
const luaReleaseIfMatch = `
local lockKey = KEYS[1]
local token = ARGV[1]
if redis.call('GET', lockKey) == token then
  return redis.call('DEL', lockKey)
end
return 0
`

// KeyedLock serializes work per order id across all running instances.
type KeyedLock struct {
	rdb *rd.Client
	ttl time.Duration
}

func NewKeyedLock(rdb *rd.Client, ttl time.Duration) *KeyedLock {
	return &KeyedLock{rdb: rdb, ttl: ttl}
}

func lockKey(key string) string {
	return fmt.Sprintf("lock:order:%s", key)
}

// Acquire polls SetNX until the lock is taken or ctx expires.
func (l *KeyedLock) Acquire(ctx context.Context, key, token string) error {
	for {
		ok, err := l.rdb.SetNX(ctx, lockKey(key), token, l.ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func (l *KeyedLock) Release(ctx context.Context, key, token string) error {
	_, err := l.rdb.Eval(ctx, luaReleaseIfMatch, []string{lockKey(key)}, token).Int()
	return err
}
