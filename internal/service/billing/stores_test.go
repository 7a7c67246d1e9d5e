// internal/service/billing/stores_test.go
package billing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"queuely-service/internal/domain/grant"
	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
	xerrors "queuely-service/internal/pkg/errors"
)

type fakePlanStore struct {
	plans   []plan.SubscriptionPlan
	listErr error
	tierErr error
}

func (f *fakePlanStore) ListActive(_ context.Context, _ int) ([]plan.SubscriptionPlan, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.plans, nil
}

func (f *fakePlanStore) FindActiveByTier(_ context.Context, tier plan.Tier) (*plan.SubscriptionPlan, error) {
	if f.tierErr != nil {
		return nil, f.tierErr
	}
	for i := range f.plans {
		if f.plans[i].Tier == tier && f.plans[i].IsActive {
			return &f.plans[i], nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakePlanStore) FindByID(_ context.Context, id int64) (*plan.SubscriptionPlan, error) {
	for i := range f.plans {
		if f.plans[i].ID == id {
			return &f.plans[i], nil
		}
	}
	return nil, xerrors.ErrNotFound
}

type fakeSubscriptionStore struct {
	active    *subscription.ProfileSubscription
	created   []subscription.ProfileSubscription
	expired   int64
	cancelled []string
	dueCount  int64
	createErr error
	expireErr error
	cancelErr error
}

func (f *fakeSubscriptionStore) Create(_ context.Context, sub *subscription.ProfileSubscription) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *sub)
	return nil
}

func (f *fakeSubscriptionStore) FindActiveByProfile(_ context.Context, profileID string) (*subscription.ProfileSubscription, error) {
	if f.active == nil || f.active.ProfileID != profileID {
		return nil, xerrors.ErrNotFound
	}
	return f.active, nil
}

func (f *fakeSubscriptionStore) ExpireActiveByProfile(_ context.Context, _ string, _ time.Time) (int64, error) {
	if f.expireErr != nil {
		return 0, f.expireErr
	}
	return f.expired, nil
}

func (f *fakeSubscriptionStore) Cancel(_ context.Context, id string, _ time.Time) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeSubscriptionStore) ExpireDue(_ context.Context, _ time.Time) (int64, error) {
	if f.expireErr != nil {
		return 0, f.expireErr
	}
	return f.dueCount, nil
}

type fakeGrantStore struct {
	grants []grant.FeatureAccessGrant
	err    error
}

func (f *fakeGrantStore) Create(_ context.Context, g *grant.FeatureAccessGrant) error {
	if f.err != nil {
		return f.err
	}
	f.grants = append(f.grants, *g)
	return nil
}

type fakeLimitsResolver struct {
	limits      plan.Limits
	err         error
	invalidated []string
}

func (f *fakeLimitsResolver) LimitsByTier(_ context.Context, _ plan.Tier) (plan.Limits, error) {
	if f.err != nil {
		return plan.Limits{}, f.err
	}
	return f.limits, nil
}

func (f *fakeLimitsResolver) InvalidateSnapshot(_ context.Context, profileID string) {
	f.invalidated = append(f.invalidated, profileID)
}

func newTestService(plans *fakePlanStore, subs *fakeSubscriptionStore, grants *fakeGrantStore, limits *fakeLimitsResolver) *Service {
	if plans == nil {
		plans = &fakePlanStore{}
	}
	if subs == nil {
		subs = &fakeSubscriptionStore{}
	}
	if grants == nil {
		grants = &fakeGrantStore{}
	}
	if limits == nil {
		limits = &fakeLimitsResolver{}
	}
	prices := Prices{OneTimeAccess: 99, PosterDesign: 49}
	return NewService(plans, subs, grants, limits, prices, zap.NewNop())
}
