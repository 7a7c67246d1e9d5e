// internal/service/entitlement/evaluator.go
package entitlement

import (
	"context"
	"database/sql"

	"queuely-service/internal/domain/entitlement"
	"queuely-service/internal/domain/usage"

	"go.uber.org/zap"
)

// Service answers "may this profile do that" questions from the profile's
// tier, the tier's limits and the profile's recorded usage.
type Service struct {
	planStore         PlanStore
	subscriptionStore SubscriptionStore
	usageStore        UsageStore
	grantStore        GrantStore
	cache             SnapshotCache
	logger            *zap.Logger
}

func NewService(
	planStore PlanStore,
	subscriptionStore SubscriptionStore,
	usageStore UsageStore,
	grantStore GrantStore,
	cache SnapshotCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		planStore:         planStore,
		subscriptionStore: subscriptionStore,
		usageStore:        usageStore,
		grantStore:        grantStore,
		cache:             cache,
		logger:            logger,
	}
}

// CanPerformAction reports whether the profile may perform the action right
// now. shopID narrows queue counting to one shop and may be empty.
//
// Counted actions are permitted while usage stays strictly under the limit;
// a NULL limit never blocks. Flag actions follow the plan's booleans. An
// action this version does not know about is allowed (old servers must not
// lock out features newer clients ask about), while any failure along the
// resolution chain denies. The two defaults point in opposite directions on
// purpose.
//
// The usage read and the caller's subsequent action are not atomic;
// concurrent requests can both pass the check near the limit. The recording
// path owns any harder guarantee.
func (s *Service) CanPerformAction(ctx context.Context, profileID string, action entitlement.Action, shopID string) bool {
	_, limits, err := s.resolveSnapshot(ctx, profileID)
	if err != nil {
		s.logger.Error("permission check failed to resolve limits",
			zap.String("profile_id", profileID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return false
	}

	stats, err := s.usageStore.GetStats(ctx, profileID, shopID)
	if err != nil {
		s.logger.Error("permission check failed to read usage",
			zap.String("profile_id", profileID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return false
	}

	switch action {
	case entitlement.ActionCreateShop:
		return underLimit(stats.CurrentShops, limits.MaxShops)
	case entitlement.ActionCreateQueue:
		return underLimit(stats.TodayQueues, limits.MaxQueuesPerDay)
	case entitlement.ActionAddStaff:
		return underLimit(stats.CurrentStaff, limits.MaxStaff)
	case entitlement.ActionSendSms:
		return underLimit(stats.MonthlySmsSent, limits.MaxSmsPerMonth)
	case entitlement.ActionCreatePromotion:
		return underLimit(stats.ActivePromotions, limits.MaxPromotions)
	case entitlement.ActionAccessAdvancedReports:
		return limits.HasAdvancedReports
	case entitlement.ActionAccessAnalytics:
		return limits.HasAnalytics
	case entitlement.ActionAccessApi:
		return limits.HasApiAccess
	case entitlement.ActionCustomBranding:
		return limits.HasCustomBranding
	case entitlement.ActionCustomQrCode:
		return limits.HasCustomQrCode
	case entitlement.ActionPrioritySupport:
		return limits.HasPrioritySupport
	case entitlement.ActionPromotionFeatures:
		return limits.HasPromotionFeatures
	default:
		s.logger.Warn("unknown entitlement action, allowing",
			zap.String("profile_id", profileID),
			zap.String("action", string(action)),
		)
		return true
	}
}

// underLimit applies the counted-action rule: a NULL limit is unlimited,
// otherwise usage must stay strictly below the limit.
func underLimit(current int, limit sql.NullInt32) bool {
	if !limit.Valid {
		return true
	}
	return current < int(limit.Int32)
}

// GetUsageStats returns the profile's counters together with the data
// retention window its plan resolves to. Failures degrade to a zeroed
// report; dashboards prefer empty gauges over an error page.
func (s *Service) GetUsageStats(ctx context.Context, profileID string) *usage.Report {
	tier := s.TierByProfile(ctx, profileID)

	limits, err := s.LimitsByTier(ctx, tier)
	if err != nil {
		s.logger.Error("usage report failed to resolve limits",
			zap.String("profile_id", profileID),
			zap.String("tier", string(tier)),
			zap.Error(err),
		)
		return &usage.Report{}
	}

	stats, err := s.usageStore.GetStats(ctx, profileID, "")
	if err != nil {
		s.logger.Error("usage report failed to read counters",
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
		return &usage.Report{}
	}

	report := &usage.Report{Stats: *stats}
	if limits.DataRetentionMonths.Valid {
		report.DataRetentionMonths = int(limits.DataRetentionMonths.Int32)
	}

	return report
}
