// internal/domain/plan/entity_test.go
package plan

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TierFree.Order())
	assert.Equal(t, 1, TierPro.Order())
	assert.Equal(t, 2, TierEnterprise.Order())
	assert.Equal(t, -1, Tier("platinum").Order())
	assert.Equal(t, -1, Tier("").Order())
}

func TestTierAbove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier  Tier
		other Tier
		want  bool
	}{
		{TierPro, TierFree, true},
		{TierEnterprise, TierPro, true},
		{TierEnterprise, TierFree, true},
		{TierFree, TierFree, false},
		{TierFree, TierPro, false},
		{TierPro, TierEnterprise, false},
		// Unknown tiers sit below the ladder entirely.
		{TierFree, Tier("platinum"), true},
		{Tier("platinum"), TierFree, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tier.Above(tt.other), "%s above %s", tt.tier, tt.other)
	}
}

func TestPlanLimitsExtraction(t *testing.T) {
	t.Parallel()

	p := SubscriptionPlan{
		Tier:                 TierPro,
		MaxShops:             sql.NullInt32{Int32: 5, Valid: true},
		MaxQueuesPerDay:      sql.NullInt32{},
		MaxFreePosterDesigns: sql.NullInt32{Int32: 10, Valid: true},
		HasAnalytics:         true,
	}

	limits := p.Limits()
	assert.Equal(t, TierPro, limits.Tier)
	assert.Equal(t, p.MaxShops, limits.MaxShops)
	assert.False(t, limits.MaxQueuesPerDay.Valid)
	assert.Equal(t, p.MaxFreePosterDesigns, limits.MaxFreePosterDesigns)
	assert.True(t, limits.HasAnalytics)
	assert.False(t, limits.HasApiAccess)
}

func TestFreeTierLimits(t *testing.T) {
	t.Parallel()

	limits := FreeTierLimits()
	assert.Equal(t, TierFree, limits.Tier)
	assert.Equal(t, int32(1), limits.MaxShops.Int32)
	assert.Equal(t, int32(50), limits.MaxQueuesPerDay.Int32)
	assert.Equal(t, int32(1), limits.MaxStaff.Int32)
	assert.Equal(t, int32(1), limits.DataRetentionMonths.Int32)
	assert.Equal(t, int32(10), limits.MaxSmsPerMonth.Int32)
	assert.Equal(t, int32(0), limits.MaxPromotions.Int32)
	assert.Equal(t, int32(3), limits.MaxFreePosterDesigns.Int32)

	// Every numeric limit on the fallback record is finite.
	for _, l := range []sql.NullInt32{
		limits.MaxShops, limits.MaxQueuesPerDay, limits.MaxStaff,
		limits.DataRetentionMonths, limits.MaxSmsPerMonth,
		limits.MaxPromotions, limits.MaxFreePosterDesigns,
	} {
		assert.True(t, l.Valid)
	}

	assert.False(t, limits.HasAdvancedReports)
	assert.False(t, limits.HasApiAccess)
	assert.False(t, limits.HasPromotionFeatures)
}
