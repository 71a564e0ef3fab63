package implementation

import (
	"context"
	"errors"
	"time"

	"cashbook-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "auth:revoked:"

type RedisTokenDenylist struct {
	rdb *redis.Client
}

func NewRedisTokenDenylist(rdb *redis.Client) contract.TokenDenylist {
	return &RedisTokenDenylist{rdb: rdb}
}

func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenId string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired, the signature check rejects it on its own
		return nil
	}
	return d.rdb.Set(ctx, denylistKeyPrefix+tokenId, 1, ttl).Err()
}

func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenId string) (bool, error) {
	err := d.rdb.Get(ctx, denylistKeyPrefix+tokenId).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
