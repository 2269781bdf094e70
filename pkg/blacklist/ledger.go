// Package blacklist tracks consumed and revoked refresh-token IDs.
//
// The ledger only ever grows for the lifetime of a token: once a jti is
// written it stays written until the token would have expired anyway, at
// which point the entry can be dropped because the signature check already
// rejects the token.
package blacklist

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Ledger interface {
	// Consume records jti as used. It returns true for exactly one caller
	// per jti; every later (or concurrently losing) caller gets false.
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)

	// Revoke records jti unconditionally. Idempotent.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisLedger struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisLedger(rdb *redis.Client) *RedisLedger {
	return &RedisLedger{rdb: rdb, prefix: "blacklist:jti:"}
}

const minEntryTTL = time.Second

func (l *RedisLedger) key(jti string) string {
	return l.prefix + jti
}

// Consume relies on SETNX for the check-and-set: the store, not the
// application, decides the single winner among concurrent callers.
func (l *RedisLedger) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl < minEntryTTL {
		ttl = minEntryTTL
	}
	return l.rdb.SetNX(ctx, l.key(jti), time.Now().Unix(), ttl).Result()
}

func (l *RedisLedger) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl < minEntryTTL {
		ttl = minEntryTTL
	}
	return l.rdb.Set(ctx, l.key(jti), time.Now().Unix(), ttl).Err()
}

func (l *RedisLedger) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.rdb.Exists(ctx, l.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
