package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
)

// invalidated marks a list that changed in Postgres. Reads treat it as a miss and
// refills cannot overwrite it until it expires.
const invalidated = "invalidated"

// CounselleeCache keeps each counsellor's counsellee IDs so view checks skip Postgres.
type CounselleeCache struct {
	rdb        *redis.Client
	ttl        time.Duration
	refillHold time.Duration
}

func NewCounselleeCache(rdb *redis.Client, ttl, refillHold time.Duration) *CounselleeCache {
	return &CounselleeCache{rdb: rdb, ttl: ttl, refillHold: refillHold}
}

func key(counsellorID uuid.UUID) string { return "access:counsellees:" + counsellorID.String() }

// Counsellees reports ok=false on a miss.
func (c *CounselleeCache) Counsellees(ctx context.Context, counsellorID uuid.UUID) ([]uuid.UUID, bool, error) {
	b, err := c.rdb.Get(ctx, key(counsellorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("get counsellees: %w", err)
	}

	if string(b) == invalidated {
		return nil, false, nil
	}

	var ids []uuid.UUID

	err = json.Unmarshal(b, &ids)
	if err != nil {
		return nil, false, fmt.Errorf("unmarshal counsellees: %w", err)
	}

	return ids, true, nil
}

// SetCounsellees stores ids unless the key holds a list or an invalidation marker. A
// refill racing with Invalidate is dropped.
func (c *CounselleeCache) SetCounsellees(ctx context.Context, counsellorID uuid.UUID, ids []uuid.UUID) error {
	if ids == nil {
		ids = []uuid.UUID{}
	}

	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal counsellees: %w", err)
	}

	return c.rdb.SetNX(ctx, key(counsellorID), b, c.ttl).Err()
}

// Invalidate replaces the cached lists with markers that live for the refill hold.
func (c *CounselleeCache) Invalidate(ctx context.Context, counsellorIDs ...uuid.UUID) error {
	if len(counsellorIDs) == 0 {
		return nil
	}

	pipe := c.rdb.TxPipeline()

	for _, id := range counsellorIDs {
		pipe.Set(ctx, key(id), invalidated, c.refillHold)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("invalidate counsellees: %w", err)
	}

	return nil
}
