package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/access/pkg/cache"
)

const (
	ttl        = 10 * time.Minute
	refillHold = 30 * time.Second
)

func TestCounselleeCache(t *testing.T) {
	t.Parallel()

	c, _ := newCache(t)
	ctx := context.Background()
	counsellorID := uuid.Must(uuid.NewV4())

	_, ok, err := c.Counsellees(ctx, counsellorID)
	require.NoError(t, err)
	require.False(t, ok)

	want := []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}
	require.NoError(t, c.SetCounsellees(ctx, counsellorID, want))

	got, ok, err := c.Counsellees(ctx, counsellorID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	require.NoError(t, c.Invalidate(ctx, counsellorID))

	_, ok, err = c.Counsellees(ctx, counsellorID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCounselleeCache_EmptyListIsAHit(t *testing.T) {
	t.Parallel()

	c, _ := newCache(t)
	ctx := context.Background()
	counsellorID := uuid.Must(uuid.NewV4())

	require.NoError(t, c.SetCounsellees(ctx, counsellorID, nil))

	got, ok, err := c.Counsellees(ctx, counsellorID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, got)
}

func TestCounselleeCache_StaleRefillAfterInvalidate(t *testing.T) {
	t.Parallel()

	c, m := newCache(t)
	ctx := context.Background()
	counsellorID := uuid.Must(uuid.NewV4())
	revoked := uuid.Must(uuid.NewV4())

	// A reader loaded the list from Postgres before the unassignment committed and
	// writes it back after the invalidation.
	require.NoError(t, c.Invalidate(ctx, counsellorID))
	require.NoError(t, c.SetCounsellees(ctx, counsellorID, []uuid.UUID{revoked}))

	_, ok, err := c.Counsellees(ctx, counsellorID)
	require.NoError(t, err)
	require.False(t, ok)

	m.FastForward(refillHold + time.Second)

	fresh := []uuid.UUID{uuid.Must(uuid.NewV4())}
	require.NoError(t, c.SetCounsellees(ctx, counsellorID, fresh))

	got, ok, err := c.Counsellees(ctx, counsellorID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fresh, got)
}

func TestCounselleeCache_InvalidateMany(t *testing.T) {
	t.Parallel()

	c, m := newCache(t)
	ctx := context.Background()
	first := uuid.Must(uuid.NewV4())
	second := uuid.Must(uuid.NewV4())

	require.NoError(t, c.SetCounsellees(ctx, first, []uuid.UUID{uuid.Must(uuid.NewV4())}))
	require.NoError(t, c.SetCounsellees(ctx, second, nil))

	require.NoError(t, c.Invalidate(ctx, first, second))
	require.NoError(t, c.Invalidate(ctx))

	for _, id := range []uuid.UUID{first, second} {
		_, ok, err := c.Counsellees(ctx, id)
		require.NoError(t, err)
		require.False(t, ok)

		require.Equal(t, refillHold, m.TTL("access:counsellees:"+id.String()))
	}
}

func TestCounselleeCache_RedisDown(t *testing.T) {
	t.Parallel()

	c, m := newCache(t)
	ctx := context.Background()
	counsellorID := uuid.Must(uuid.NewV4())

	m.Close()

	_, _, err := c.Counsellees(ctx, counsellorID)
	require.Error(t, err)
	require.Error(t, c.Invalidate(ctx, counsellorID))
}

func newCache(t *testing.T) (*cache.CounselleeCache, *miniredis.Miniredis) {
	t.Helper()

	m := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	return cache.NewCounselleeCache(rdb, ttl, refillHold), m
}
