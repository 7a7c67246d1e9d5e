// internal/service/billing/stores.go
package billing

import (
	"context"
	"time"

	"queuely-service/internal/domain/grant"
	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
)

// PlanStore is the slice of the plan catalog upgrade flows read.
type PlanStore interface {
	ListActive(ctx context.Context, limit int) ([]plan.SubscriptionPlan, error)
	FindActiveByTier(ctx context.Context, tier plan.Tier) (*plan.SubscriptionPlan, error)
	FindByID(ctx context.Context, id int64) (*plan.SubscriptionPlan, error)
}

// SubscriptionStore is the subscription persistence upgrade flows write.
type SubscriptionStore interface {
	Create(ctx context.Context, sub *subscription.ProfileSubscription) error
	FindActiveByProfile(ctx context.Context, profileID string) (*subscription.ProfileSubscription, error)
	ExpireActiveByProfile(ctx context.Context, profileID string, endDate time.Time) (int64, error)
	Cancel(ctx context.Context, id string, cancelledAt time.Time) error
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

// GrantStore creates feature access grants for purchases.
type GrantStore interface {
	Create(ctx context.Context, g *grant.FeatureAccessGrant) error
}

// LimitsResolver resolves tier limits and owns the entitlement snapshot
// cache that upgrades must invalidate.
type LimitsResolver interface {
	LimitsByTier(ctx context.Context, tier plan.Tier) (plan.Limits, error)
	InvalidateSnapshot(ctx context.Context, profileID string)
}
