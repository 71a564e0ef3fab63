package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenDenylist(t *testing.T) {
	ctx := context.Background()
	denylist := NewTokenDenylist()

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Already expired tokens are not stored at all
	require.NoError(t, denylist.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))
	revoked, err = denylist.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylist_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	denylist := NewTokenDenylist()

	require.NoError(t, denylist.Revoke(ctx, "short", time.Now().Add(50*time.Millisecond)))

	assert.Eventually(t, func() bool {
		revoked, err := denylist.IsRevoked(ctx, "short")
		return err == nil && !revoked
	}, time.Second, 10*time.Millisecond)
}
