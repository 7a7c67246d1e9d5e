// internal/service/billing/service.go
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
	xerrors "queuely-service/internal/pkg/errors"
)

const (
	monthlyPeriodDays = 30
	yearlyPeriodDays  = 365
)

// Prices for one-off purchases, injected from configuration.
type Prices struct {
	OneTimeAccess float64
	PosterDesign  float64
}

// Service orchestrates subscription upgrades and one-time feature purchases.
// It is the only writer of subscription and grant rows; the entitlement
// engine only ever reads them.
type Service struct {
	plans  PlanStore
	subs   SubscriptionStore
	grants GrantStore
	limits LimitsResolver
	prices Prices
	logger *zap.Logger
}

func NewService(plans PlanStore, subs SubscriptionStore, grants GrantStore, limits LimitsResolver, prices Prices, logger *zap.Logger) *Service {
	return &Service{
		plans:  plans,
		subs:   subs,
		grants: grants,
		limits: limits,
		prices: prices,
		logger: logger,
	}
}

// UpgradeSubscription moves a profile onto the active plan for the given tier.
// Any currently active subscription is expired first; there is no proration.
// The new row snapshots the plan price for the chosen billing period and ends
// after a fixed 30 or 365 days.
func (s *Service) UpgradeSubscription(ctx context.Context, profileID string, tier plan.Tier, period subscription.BillingPeriod) (*subscription.UpgradeResult, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("billing: invalid billing period %q: %w", period, xerrors.ErrInvalidInput)
	}

	p, err := s.plans.FindActiveByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("billing: resolve plan for tier %q: %w", tier, err)
	}

	now := time.Now().UTC()
	price := p.MonthlyPrice
	periodDays := monthlyPeriodDays
	if period == subscription.PeriodYearly {
		price = p.YearlyPrice
		periodDays = yearlyPeriodDays
	}

	expired, err := s.subs.ExpireActiveByProfile(ctx, profileID, now)
	if err != nil {
		return nil, fmt.Errorf("billing: expire previous subscription: %w", err)
	}
	if expired > 0 {
		s.logger.Info("expired previous subscription on upgrade",
			zap.String("profile_id", profileID),
			zap.Int64("rows", expired))
	}

	sub := &subscription.ProfileSubscription{
		ID:             ulid.Make().String(),
		ProfileID:      profileID,
		PlanID:         p.ID,
		Status:         subscription.StatusActive,
		BillingPeriod:  period,
		PricePerPeriod: price,
		Currency:       p.Currency,
		StartDate:      now,
		EndDate:        nullTime(now.AddDate(0, 0, periodDays)),
		AutoRenew:      true,
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("billing: create subscription: %w", err)
	}

	s.limits.InvalidateSnapshot(ctx, profileID)

	limits, err := s.limits.LimitsByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("billing: resolve limits after upgrade: %w", err)
	}

	s.logger.Info("subscription upgraded",
		zap.String("profile_id", profileID),
		zap.String("tier", string(tier)),
		zap.String("billing_period", string(period)),
		zap.String("subscription_id", sub.ID))

	return &subscription.UpgradeResult{Subscription: *sub, Limits: limits}, nil
}

// CurrentSubscription returns the profile's active subscription together with
// the tier its plan resolves to.
func (s *Service) CurrentSubscription(ctx context.Context, profileID string) (*subscription.Snapshot, error) {
	sub, err := s.subs.FindActiveByProfile(ctx, profileID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrNoActiveSubscription
		}
		return nil, fmt.Errorf("billing: load active subscription: %w", err)
	}

	p, err := s.plans.FindByID(ctx, sub.PlanID)
	if err != nil {
		return nil, fmt.Errorf("billing: load plan %d: %w", sub.PlanID, err)
	}

	return &subscription.Snapshot{Subscription: *sub, Tier: p.Tier}, nil
}

// CancelSubscription marks the profile's active subscription cancelled. The
// row keeps its end date; entitlements lapse when it passes.
func (s *Service) CancelSubscription(ctx context.Context, profileID string) error {
	sub, err := s.subs.FindActiveByProfile(ctx, profileID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return xerrors.ErrNoActiveSubscription
		}
		return fmt.Errorf("billing: load active subscription: %w", err)
	}

	if err := s.subs.Cancel(ctx, sub.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("billing: cancel subscription %s: %w", sub.ID, err)
	}

	s.limits.InvalidateSnapshot(ctx, profileID)
	s.logger.Info("subscription cancelled",
		zap.String("profile_id", profileID),
		zap.String("subscription_id", sub.ID))
	return nil
}

// ProcessExpired flips subscriptions whose end date has passed to expired.
// Meant to run on a schedule.
func (s *Service) ProcessExpired(ctx context.Context) (int64, error) {
	n, err := s.subs.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("billing: expire due subscriptions: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired due subscriptions", zap.Int64("rows", n))
	}
	return n, nil
}
