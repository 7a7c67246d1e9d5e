// internal/service/entitlement/resolver.go
package entitlement

import (
	"context"

	"queuely-service/internal/domain/plan"
	"queuely-service/internal/domain/subscription"
	xerrors "queuely-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// TierByProfile resolves the tier the profile is entitled to.
//
// The newest subscription row decides: if it exists and is active, its plan's
// tier wins. Everything else, whether no subscription, a lapsed one, or a
// storage failure, resolves to the free tier. This lookup backs permission checks on
// hot paths and must not take a whole request down with it, so it never
// returns an error.
func (s *Service) TierByProfile(ctx context.Context, profileID string) plan.Tier {
	sub, err := s.subscriptionStore.FindLatestByProfile(ctx, profileID)
	if err != nil {
		if !xerrors.Is(err, xerrors.ErrNotFound) {
			s.logger.Error("failed to load subscription for tier resolution",
				zap.String("profile_id", profileID),
				zap.Error(err),
			)
		}
		return plan.TierFree
	}

	if sub.Status != subscription.StatusActive {
		return plan.TierFree
	}

	p, err := s.planStore.FindByID(ctx, sub.PlanID)
	if err != nil {
		s.logger.Error("failed to load plan for tier resolution",
			zap.String("profile_id", profileID),
			zap.Int64("plan_id", sub.PlanID),
			zap.Error(err),
		)
		return plan.TierFree
	}

	return p.Tier
}

// LimitsByTier resolves a tier to its concrete limits/flags record.
//
// A missing catalog row degrades to the hardcoded free-tier record; any other
// storage failure propagates. The asymmetry against TierByProfile is
// deliberate: a thin catalog should not silently grant or deny anything
// beyond the free baseline, but an unreachable catalog is an outage the
// caller has to see.
func (s *Service) LimitsByTier(ctx context.Context, tier plan.Tier) (plan.Limits, error) {
	p, err := s.planStore.FindActiveByTier(ctx, tier)
	if err != nil {
		return limitsFallback(tier, err, s.logger)
	}

	return p.Limits(), nil
}

// limitsFallback converts a catalog lookup failure into either the free-tier
// default record (plan simply not there) or a propagated error (anything
// else). Split out so the conversion policy is testable on its own.
func limitsFallback(tier plan.Tier, err error, logger *zap.Logger) (plan.Limits, error) {
	if xerrors.Is(err, xerrors.ErrNotFound) {
		logger.Warn("no active plan for tier, using free-tier fallback limits",
			zap.String("tier", string(tier)),
		)
		return plan.FreeTierLimits(), nil
	}

	logger.Error("failed to resolve limits for tier",
		zap.String("tier", string(tier)),
		zap.Error(err),
	)
	return plan.Limits{}, err
}

// resolveSnapshot returns the profile's (tier, limits) pair, going through
// the snapshot cache when one is configured. Cache failures are logged and
// ignored; they can never change the outcome of a check.
func (s *Service) resolveSnapshot(ctx context.Context, profileID string) (plan.Tier, plan.Limits, error) {
	if s.cache != nil {
		tier, limits, ok, err := s.cache.Get(ctx, profileID)
		if err != nil {
			s.logger.Warn("entitlement cache read failed",
				zap.String("profile_id", profileID),
				zap.Error(err),
			)
		} else if ok {
			return tier, limits, nil
		}
	}

	tier := s.TierByProfile(ctx, profileID)
	limits, err := s.LimitsByTier(ctx, tier)
	if err != nil {
		return tier, plan.Limits{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, profileID, tier, limits); err != nil {
			s.logger.Warn("entitlement cache write failed",
				zap.String("profile_id", profileID),
				zap.Error(err),
			)
		}
	}

	return tier, limits, nil
}

// InvalidateSnapshot drops the profile's cached snapshot, if caching is on.
func (s *Service) InvalidateSnapshot(ctx context.Context, profileID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, profileID); err != nil {
		s.logger.Warn("entitlement cache invalidation failed",
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
	}
}
