package memory

import (
	"context"
	"time"

	"cashbook-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// TokenDenylist keeps revoked tokens in process memory. Used when no Redis URL
// is configured; revocations do not survive a restart or cross replicas.
type TokenDenylist struct {
	cache *cache.Cache
}

func NewTokenDenylist() contract.TokenDenylist {
	// Entries carry their own expiry; purge expired ones every 10 minutes
	return &TokenDenylist{cache: cache.New(cache.NoExpiration, 10*time.Minute)}
}

func (d *TokenDenylist) Revoke(_ context.Context, tokenId string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	d.cache.Set(tokenId, struct{}{}, ttl)
	return nil
}

func (d *TokenDenylist) IsRevoked(_ context.Context, tokenId string) (bool, error) {
	_, found := d.cache.Get(tokenId)
	return found, nil
}
