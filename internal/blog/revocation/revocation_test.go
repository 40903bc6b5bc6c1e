package revocation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisList(t *testing.T) (*RedisList, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	l := NewRedisList(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = l.Close() })
	return l, mr
}

func TestRedisList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("revoke then check", func(t *testing.T) {
		l, mr := newRedisList(t)

		require.NoError(t, l.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

		revoked, err := l.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		require.True(t, revoked)

		revoked, err = l.IsRevoked(ctx, "jti-2")
		require.NoError(t, err)
		require.False(t, revoked)

		require.True(t, mr.Exists(keyPrefix+"jti-1"))
		require.Greater(t, mr.TTL(keyPrefix+"jti-1"), time.Duration(0))
	})

	t.Run("entry expires with the token", func(t *testing.T) {
		l, mr := newRedisList(t)

		require.NoError(t, l.Revoke(ctx, "jti", time.Now().Add(30*time.Second)))
		mr.FastForward(time.Minute)

		revoked, err := l.IsRevoked(ctx, "jti")
		require.NoError(t, err)
		require.False(t, revoked)
	})

	t.Run("already expired token is not stored", func(t *testing.T) {
		l, mr := newRedisList(t)

		require.NoError(t, l.Revoke(ctx, "old", time.Now().Add(-time.Second)))
		require.False(t, mr.Exists(keyPrefix+"old"))
	})

	t.Run("revoke if absent has a single winner", func(t *testing.T) {
		l, mr := newRedisList(t)
		exp := time.Now().Add(time.Minute)

		require.Equal(t, 1, concurrentClaims(t, l, "jti", exp))
		require.True(t, mr.Exists(keyPrefix+"jti"))

		ok, err := l.RevokeIfAbsent(ctx, "old", time.Now().Add(-time.Second))
		require.NoError(t, err)
		require.False(t, ok)
		require.False(t, mr.Exists(keyPrefix+"old"))
	})

	t.Run("unreachable server", func(t *testing.T) {
		l, mr := newRedisList(t)
		mr.Close()

		_, err := l.IsRevoked(ctx, "jti")
		require.Error(t, err)
		_, err = l.RevokeIfAbsent(ctx, "jti", time.Now().Add(time.Minute))
		require.Error(t, err)
		require.Error(t, l.Ping(ctx))
	})
}

// concurrentClaims races RevokeIfAbsent for one jti and counts the winners.
func concurrentClaims(t *testing.T, l List, jti string, exp time.Time) int {
	t.Helper()

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.RevokeIfAbsent(context.Background(), jti, exp)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	return int(wins.Load())
}

func TestNewRedisListFromURL(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	l, err := NewRedisListFromURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	require.NoError(t, l.Ping(context.Background()))

	_, err = NewRedisListFromURL("http://nope")
	require.Error(t, err)
}

func TestMemoryList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryList()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Revoke(ctx, "a", now.Add(time.Minute)))
	require.NoError(t, l.Revoke(ctx, "b", now.Add(time.Hour)))
	require.NoError(t, l.Revoke(ctx, "stale", now.Add(-time.Minute)))
	require.Equal(t, 2, l.Len())

	revoked, err := l.IsRevoked(ctx, "a")
	require.NoError(t, err)
	require.True(t, revoked)

	now = now.Add(2 * time.Minute)

	revoked, err = l.IsRevoked(ctx, "a")
	require.NoError(t, err)
	require.False(t, revoked)

	require.Equal(t, 1, l.Sweep(ctx))
	require.Equal(t, 1, l.Len())

	revoked, err = l.IsRevoked(ctx, "b")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestMemoryListRevokeIfAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryList()
	l.now = func() time.Time { return now }

	require.Equal(t, 1, concurrentClaims(t, l, "jti", now.Add(time.Minute)))

	revoked, err := l.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	require.True(t, revoked)

	ok, err := l.RevokeIfAbsent(ctx, "stale", now.Add(-time.Second))
	require.NoError(t, err)
	require.False(t, ok)

	// A lapsed entry can be claimed again
	now = now.Add(2 * time.Minute)
	ok, err = l.RevokeIfAbsent(ctx, "jti", now.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, ok)
}
