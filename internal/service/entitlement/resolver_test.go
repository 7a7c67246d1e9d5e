// internal/service/entitlement/resolver_test.go
package entitlement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
	xerrors "queuely-service/internal/pkg/errors"
)

func TestTierByProfile(t *testing.T) {
	t.Parallel()

	proPlan := &plan.SubscriptionPlan{ID: 2, Tier: plan.TierPro, IsActive: true}
	plans := func() *fakePlanStore {
		return &fakePlanStore{byID: map[int64]*plan.SubscriptionPlan{2: proPlan}}
	}

	tests := []struct {
		name string
		subs *fakeSubscriptionStore
		want plan.Tier
	}{
		{
			name: "active subscription resolves plan tier",
			subs: &fakeSubscriptionStore{sub: &subscription.ProfileSubscription{PlanID: 2, Status: subscription.StatusActive}},
			want: plan.TierPro,
		},
		{
			name: "no subscription resolves free",
			subs: &fakeSubscriptionStore{},
			want: plan.TierFree,
		},
		{
			name: "cancelled subscription resolves free",
			subs: &fakeSubscriptionStore{sub: &subscription.ProfileSubscription{PlanID: 2, Status: subscription.StatusCancelled}},
			want: plan.TierFree,
		},
		{
			name: "expired subscription resolves free",
			subs: &fakeSubscriptionStore{sub: &subscription.ProfileSubscription{PlanID: 2, Status: subscription.StatusExpired}},
			want: plan.TierFree,
		},
		{
			name: "store failure resolves free",
			subs: &fakeSubscriptionStore{err: errors.New("connection refused")},
			want: plan.TierFree,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(plans(), tt.subs, nil, nil, nil)
			got := svc.TierByProfile(context.Background(), "profile-1")
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("plan lookup failure resolves free", func(t *testing.T) {
		t.Parallel()

		broken := plans()
		broken.idErr = errors.New("catalog down")
		subs := &fakeSubscriptionStore{sub: &subscription.ProfileSubscription{PlanID: 2, Status: subscription.StatusActive}}
		svc := newTestService(broken, subs, nil, nil, nil)

		assert.Equal(t, plan.TierFree, svc.TierByProfile(context.Background(), "profile-1"))
	})
}

func TestLimitsByTier(t *testing.T) {
	t.Parallel()

	t.Run("resolves plan limits", func(t *testing.T) {
		t.Parallel()

		p := &plan.SubscriptionPlan{Tier: plan.TierPro, MaxShops: limit(5), HasAnalytics: true}
		plans := &fakePlanStore{byTier: map[plan.Tier]*plan.SubscriptionPlan{plan.TierPro: p}}
		svc := newTestService(plans, nil, nil, nil, nil)

		limits, err := svc.LimitsByTier(context.Background(), plan.TierPro)
		require.NoError(t, err)
		assert.Equal(t, limit(5), limits.MaxShops)
		assert.True(t, limits.HasAnalytics)
	})

	t.Run("missing plan falls back to free limits", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&fakePlanStore{}, nil, nil, nil, nil)

		limits, err := svc.LimitsByTier(context.Background(), plan.TierEnterprise)
		require.NoError(t, err)
		assert.Equal(t, plan.FreeTierLimits(), limits)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection refused")
		svc := newTestService(&fakePlanStore{tierErr: boom}, nil, nil, nil, nil)

		_, err := svc.LimitsByTier(context.Background(), plan.TierPro)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestLimitsFallbackPolicy(t *testing.T) {
	t.Parallel()

	logger := zap.NewNop()

	limits, err := limitsFallback(plan.TierPro, xerrors.ErrNotFound, logger)
	require.NoError(t, err)
	assert.Equal(t, plan.FreeTierLimits(), limits)

	wrapped := xerrors.Wrap(xerrors.ErrNotFound, "find active plan")
	limits, err = limitsFallback(plan.TierPro, wrapped, logger)
	require.NoError(t, err)
	assert.Equal(t, plan.FreeTierLimits(), limits)

	boom := errors.New("connection refused")
	_, err = limitsFallback(plan.TierPro, boom, logger)
	assert.ErrorIs(t, err, boom)
}

func TestResolveSnapshotCaching(t *testing.T) {
	t.Parallel()

	proPlan := &plan.SubscriptionPlan{ID: 2, Tier: plan.TierPro, MaxShops: limit(5)}
	plans := &fakePlanStore{
		byTier: map[plan.Tier]*plan.SubscriptionPlan{plan.TierPro: proPlan},
		byID:   map[int64]*plan.SubscriptionPlan{2: proPlan},
	}
	subs := &fakeSubscriptionStore{sub: &subscription.ProfileSubscription{PlanID: 2, Status: subscription.StatusActive}}

	t.Run("miss populates, hit short-circuits", func(t *testing.T) {
		t.Parallel()

		cache := newFakeCache()
		svc := newTestService(plans, subs, nil, nil, cache)
		ctx := context.Background()

		tier, limits, err := svc.resolveSnapshot(ctx, "profile-1")
		require.NoError(t, err)
		assert.Equal(t, plan.TierPro, tier)
		assert.Equal(t, limit(5), limits.MaxShops)
		assert.Equal(t, 1, cache.sets)

		_, _, err = svc.resolveSnapshot(ctx, "profile-1")
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets, "hit must not rewrite the entry")
	})

	t.Run("cache failures never change the outcome", func(t *testing.T) {
		t.Parallel()

		cache := newFakeCache()
		cache.getErr = errors.New("redis down")
		cache.setErr = errors.New("redis down")
		svc := newTestService(plans, subs, nil, nil, cache)

		tier, limits, err := svc.resolveSnapshot(context.Background(), "profile-1")
		require.NoError(t, err)
		assert.Equal(t, plan.TierPro, tier)
		assert.Equal(t, limit(5), limits.MaxShops)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		t.Parallel()

		cache := newFakeCache()
		svc := newTestService(plans, subs, nil, nil, cache)
		ctx := context.Background()

		_, _, err := svc.resolveSnapshot(ctx, "profile-1")
		require.NoError(t, err)
		svc.InvalidateSnapshot(ctx, "profile-1")

		_, ok := cache.entries["profile-1"]
		assert.False(t, ok)
	})
}
