// internal/service/entitlement/poster_test.go
package entitlement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
)

func TestPosterOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		posterID string
		want     int
	}{
		{"poster_1", 1},
		{"poster_012", 12},
		{"design-4-final", 4},
		{"7", 7},
		{"summer_sale", 0},
		{"", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.posterID, func(t *testing.T) {
			t.Parallel()

			got, err := posterOrdinal(tt.posterID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPosterAccessible(t *testing.T) {
	t.Parallel()

	// Pro plan with a free-poster quota of 10.
	withQuota := func(quota *plan.SubscriptionPlan) (*fakePlanStore, *fakeSubscriptionStore) {
		quota.ID = 2
		quota.Tier = plan.TierPro
		plans := &fakePlanStore{
			byTier: map[plan.Tier]*plan.SubscriptionPlan{plan.TierPro: quota},
			byID:   map[int64]*plan.SubscriptionPlan{2: quota},
		}
		subs := &fakeSubscriptionStore{sub: &subscription.ProfileSubscription{PlanID: 2, Status: subscription.StatusActive}}
		return plans, subs
	}

	t.Run("purchased grant wins regardless of ordinal", func(t *testing.T) {
		t.Parallel()

		plans, subs := withQuota(&plan.SubscriptionPlan{MaxFreePosterDesigns: limit(0)})
		svc := newTestService(plans, subs, nil, &fakeGrantStore{granted: true}, nil)

		assert.True(t, svc.IsPosterAccessible(context.Background(), "profile-1", "poster_999"))
	})

	t.Run("grant store failure denies", func(t *testing.T) {
		t.Parallel()

		plans, subs := withQuota(&plan.SubscriptionPlan{})
		svc := newTestService(plans, subs, nil, &fakeGrantStore{err: errors.New("grants down")}, nil)

		assert.False(t, svc.IsPosterAccessible(context.Background(), "profile-1", "poster_1"))
	})

	t.Run("first three designs are always free", func(t *testing.T) {
		t.Parallel()

		// Quota of zero, no grant; only the first-three rule can allow.
		plans, subs := withQuota(&plan.SubscriptionPlan{MaxFreePosterDesigns: limit(0)})
		svc := newTestService(plans, subs, nil, nil, nil)
		ctx := context.Background()

		assert.True(t, svc.IsPosterAccessible(ctx, "profile-1", "poster_1"))
		assert.True(t, svc.IsPosterAccessible(ctx, "profile-1", "poster_2"))
		assert.True(t, svc.IsPosterAccessible(ctx, "profile-1", "poster_3"))
		assert.False(t, svc.IsPosterAccessible(ctx, "profile-1", "poster_4"))
	})

	t.Run("id without digits reads as ordinal zero and is free", func(t *testing.T) {
		t.Parallel()

		plans, subs := withQuota(&plan.SubscriptionPlan{MaxFreePosterDesigns: limit(0)})
		svc := newTestService(plans, subs, nil, nil, nil)

		assert.True(t, svc.IsPosterAccessible(context.Background(), "profile-1", "summer_sale"))
	})

	t.Run("null quota unlocks every design", func(t *testing.T) {
		t.Parallel()

		plans, subs := withQuota(&plan.SubscriptionPlan{MaxFreePosterDesigns: unlimited()})
		svc := newTestService(plans, subs, nil, nil, nil)

		assert.True(t, svc.IsPosterAccessible(context.Background(), "profile-1", "poster_9999"))
	})

	t.Run("ordinal inside plan quota allows, outside denies", func(t *testing.T) {
		t.Parallel()

		plans, subs := withQuota(&plan.SubscriptionPlan{MaxFreePosterDesigns: limit(10)})
		svc := newTestService(plans, subs, nil, nil, nil)
		ctx := context.Background()

		assert.True(t, svc.IsPosterAccessible(ctx, "profile-1", "poster_10"))
		assert.False(t, svc.IsPosterAccessible(ctx, "profile-1", "poster_11"))
	})

	t.Run("limits resolution failure denies", func(t *testing.T) {
		t.Parallel()

		plans, subs := withQuota(&plan.SubscriptionPlan{MaxFreePosterDesigns: limit(10)})
		plans.tierErr = errors.New("catalog down")
		svc := newTestService(plans, subs, nil, nil, nil)

		assert.False(t, svc.IsPosterAccessible(context.Background(), "profile-1", "poster_5"))
	})
}
