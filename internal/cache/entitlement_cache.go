// internal/cache/entitlement_cache.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"queuely-service/internal/domain/plan"

	"github.com/redis/go-redis/v9"
)

// EntitlementCache keeps the resolved (tier, limits) snapshot per profile in
// Redis so hot permission checks skip two database reads. Callers treat it
// as best-effort: a miss or a Redis failure just means resolving from the
// source of truth again.
type EntitlementCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEntitlementCache(client *redis.Client, ttl time.Duration) *EntitlementCache {
	return &EntitlementCache{client: client, ttl: ttl}
}

type cachedSnapshot struct {
	Tier   plan.Tier   `json:"tier"`
	Limits plan.Limits `json:"limits"`
}

func snapshotKey(profileID string) string {
	return "entitlement:snapshot:" + profileID
}

// Get returns the cached snapshot, or ok=false on a miss.
func (c *EntitlementCache) Get(ctx context.Context, profileID string) (plan.Tier, plan.Limits, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey(profileID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", plan.Limits{}, false, nil
	}
	if err != nil {
		return "", plan.Limits{}, false, fmt.Errorf("failed to read entitlement cache: %w", err)
	}

	var snap cachedSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return "", plan.Limits{}, false, fmt.Errorf("failed to decode entitlement cache entry: %w", err)
	}

	return snap.Tier, snap.Limits, true, nil
}

// Set stores the snapshot with the configured TTL.
func (c *EntitlementCache) Set(ctx context.Context, profileID string, tier plan.Tier, limits plan.Limits) error {
	data, err := json.Marshal(cachedSnapshot{Tier: tier, Limits: limits})
	if err != nil {
		return fmt.Errorf("failed to encode entitlement cache entry: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey(profileID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write entitlement cache: %w", err)
	}

	return nil
}

// Invalidate drops the profile's snapshot. Called after upgrades so the next
// check sees the new tier immediately.
func (c *EntitlementCache) Invalidate(ctx context.Context, profileID string) error {
	if err := c.client.Del(ctx, snapshotKey(profileID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate entitlement cache: %w", err)
	}
	return nil
}
