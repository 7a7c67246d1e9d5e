// internal/service/entitlement/stores.go
package entitlement

import (
	"context"

	"queuely-service/internal/domain/grant"
	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
	"queuely-service/internal/domain/usage"
)

// PlanStore is the slice of the plan catalog the engine reads.
type PlanStore interface {
	FindActiveByTier(ctx context.Context, tier plan.Tier) (*plan.SubscriptionPlan, error)
	FindByID(ctx context.Context, id int64) (*plan.SubscriptionPlan, error)
}

// SubscriptionStore is the slice of subscription persistence the engine reads.
type SubscriptionStore interface {
	FindLatestByProfile(ctx context.Context, profileID string) (*subscription.ProfileSubscription, error)
}

// UsageStore reads a profile's consumption counters.
type UsageStore interface {
	GetStats(ctx context.Context, profileID, shopID string) (*usage.Stats, error)
}

// GrantStore answers whether an explicit feature grant is in force.
type GrantStore interface {
	HasActiveGrant(ctx context.Context, profileID string, featureType grant.FeatureType, featureID string) (bool, error)
}

// SnapshotCache is an optional best-effort cache of resolved (tier, limits)
// snapshots. Implementations must treat misses and failures as equivalent.
type SnapshotCache interface {
	Get(ctx context.Context, profileID string) (plan.Tier, plan.Limits, bool, error)
	Set(ctx context.Context, profileID string, tier plan.Tier, limits plan.Limits) error
	Invalidate(ctx context.Context, profileID string) error
}
