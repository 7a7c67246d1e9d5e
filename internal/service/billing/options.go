// internal/service/billing/options.go
package billing

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"queuely-service/internal/domain/plan"
)

const maxUpgradePlans = 50

// ActivePlans returns the sellable plan catalog, lowest tier first.
func (s *Service) ActivePlans(ctx context.Context) ([]plan.SubscriptionPlan, error) {
	plans, err := s.plans.ListActive(ctx, maxUpgradePlans)
	if err != nil {
		return nil, err
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Tier.Order() < plans[j].Tier.Order()
	})
	return plans, nil
}

// UpgradeOptions lists the active plans on tiers strictly above currentTier,
// ordered lowest tier first. Failures are logged and yield an empty list so
// callers render no offers rather than an error page.
func (s *Service) UpgradeOptions(ctx context.Context, currentTier plan.Tier) []plan.UpgradeOption {
	plans, err := s.plans.ListActive(ctx, maxUpgradePlans)
	if err != nil {
		s.logger.Error("list active plans for upgrade options",
			zap.String("current_tier", string(currentTier)),
			zap.Error(err))
		return []plan.UpgradeOption{}
	}

	options := make([]plan.UpgradeOption, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		if !p.Tier.Above(currentTier) {
			continue
		}
		options = append(options, plan.UpgradeOption{
			PlanID:             p.ID,
			Tier:               p.Tier,
			Name:               p.Name,
			NameEn:             p.NameEn,
			MonthlyPrice:       p.MonthlyPrice,
			YearlyPrice:        p.YearlyPrice,
			Currency:           p.Currency,
			DiscountPercentage: yearlyDiscountPercent(p.MonthlyPrice, p.YearlyPrice),
			IsRecommended:      p.Tier == plan.TierPro,
			Limits:             p.Limits(),
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Tier.Order() < options[j].Tier.Order()
	})
	return options
}

// yearlyDiscountPercent is the saving of paying yearly over twelve monthly
// payments, rounded to a whole percent. Zero when either price is unset.
func yearlyDiscountPercent(monthly, yearly float64) int {
	if monthly <= 0 || yearly <= 0 {
		return 0
	}
	return int(math.Round((1 - (yearly/12)/monthly) * 100))
}
