// internal/service/entitlement/stores_test.go
package entitlement

import (
	"context"

	"go.uber.org/zap"

	"queuely-service/internal/domain/grant"
	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
	"queuely-service/internal/domain/usage"
	xerrors "queuely-service/internal/pkg/errors"
)

type fakePlanStore struct {
	byTier  map[plan.Tier]*plan.SubscriptionPlan
	byID    map[int64]*plan.SubscriptionPlan
	tierErr error
	idErr   error
}

func (f *fakePlanStore) FindActiveByTier(_ context.Context, tier plan.Tier) (*plan.SubscriptionPlan, error) {
	if f.tierErr != nil {
		return nil, f.tierErr
	}
	p, ok := f.byTier[tier]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

func (f *fakePlanStore) FindByID(_ context.Context, id int64) (*plan.SubscriptionPlan, error) {
	if f.idErr != nil {
		return nil, f.idErr
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

type fakeSubscriptionStore struct {
	sub *subscription.ProfileSubscription
	err error
}

func (f *fakeSubscriptionStore) FindLatestByProfile(context.Context, string) (*subscription.ProfileSubscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.sub == nil {
		return nil, xerrors.ErrNotFound
	}
	return f.sub, nil
}

type fakeUsageStore struct {
	stats *usage.Stats
	err   error
}

func (f *fakeUsageStore) GetStats(context.Context, string, string) (*usage.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stats == nil {
		return &usage.Stats{}, nil
	}
	return f.stats, nil
}

type fakeGrantStore struct {
	granted bool
	err     error
}

func (f *fakeGrantStore) HasActiveGrant(context.Context, string, grant.FeatureType, string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.granted, nil
}

type snapshotEntry struct {
	tier   plan.Tier
	limits plan.Limits
}

type fakeCache struct {
	entries map[string]snapshotEntry
	getErr  error
	setErr  error
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]snapshotEntry{}}
}

func (f *fakeCache) Get(_ context.Context, profileID string) (plan.Tier, plan.Limits, bool, error) {
	f.gets++
	if f.getErr != nil {
		return "", plan.Limits{}, false, f.getErr
	}
	e, ok := f.entries[profileID]
	if !ok {
		return "", plan.Limits{}, false, nil
	}
	return e.tier, e.limits, true, nil
}

func (f *fakeCache) Set(_ context.Context, profileID string, tier plan.Tier, limits plan.Limits) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[profileID] = snapshotEntry{tier: tier, limits: limits}
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, profileID string) error {
	delete(f.entries, profileID)
	return nil
}

func newTestService(plans *fakePlanStore, subs *fakeSubscriptionStore, usages *fakeUsageStore, grants *fakeGrantStore, cache SnapshotCache) *Service {
	if plans == nil {
		plans = &fakePlanStore{}
	}
	if subs == nil {
		subs = &fakeSubscriptionStore{}
	}
	if usages == nil {
		usages = &fakeUsageStore{}
	}
	if grants == nil {
		grants = &fakeGrantStore{}
	}
	return NewService(plans, subs, usages, grants, cache, zap.NewNop())
}
