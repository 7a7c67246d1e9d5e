// internal/domain/plan/entity.go
package plan

import (
	"database/sql"
	"time"
)

// Tier is an ordered subscription level. Ordering is free < pro < enterprise;
// unknown tiers compare below free.
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

var tierOrder = map[Tier]int{
	TierFree:       0,
	TierPro:        1,
	TierEnterprise: 2,
}

// Order returns the position of the tier in the fixed tier ladder,
// or -1 for tiers it does not know about.
func (t Tier) Order() int {
	if pos, ok := tierOrder[t]; ok {
		return pos
	}
	return -1
}

// Above reports whether t is strictly higher than other in the tier ladder.
func (t Tier) Above(other Tier) bool {
	return t.Order() > other.Order()
}

// SubscriptionPlan describes one sellable tier: pricing, quantitative limits
// and boolean feature flags. Limit columns are nullable in the database;
// a NULL limit means unlimited.
type SubscriptionPlan struct {
	ID          int64  `json:"id" db:"id"`
	Tier        Tier   `json:"tier" db:"tier"`
	Name        string `json:"name" db:"name"`
	NameEn      string `json:"name_en" db:"name_en"`
	Description string `json:"description" db:"description"`

	// Pricing
	MonthlyPrice  float64 `json:"monthly_price" db:"monthly_price"`
	YearlyPrice   float64 `json:"yearly_price" db:"yearly_price"`
	LifetimePrice float64 `json:"lifetime_price" db:"lifetime_price"`
	Currency      string  `json:"currency" db:"currency"`

	// Limits (NULL = unlimited)
	MaxShops            sql.NullInt32 `json:"max_shops" db:"max_shops"`
	MaxQueuesPerDay     sql.NullInt32 `json:"max_queues_per_day" db:"max_queues_per_day"`
	MaxStaff            sql.NullInt32 `json:"max_staff" db:"max_staff"`
	DataRetentionMonths sql.NullInt32 `json:"data_retention_months" db:"data_retention_months"`
	MaxSmsPerMonth      sql.NullInt32 `json:"max_sms_per_month" db:"max_sms_per_month"`
	MaxPromotions       sql.NullInt32 `json:"max_promotions" db:"max_promotions"`
	MaxFreePosterDesigns sql.NullInt32 `json:"max_free_poster_designs" db:"max_free_poster_designs"`

	// Feature flags
	HasAdvancedReports   bool `json:"has_advanced_reports" db:"has_advanced_reports"`
	HasCustomQrCode      bool `json:"has_custom_qr_code" db:"has_custom_qr_code"`
	HasApiAccess         bool `json:"has_api_access" db:"has_api_access"`
	HasPrioritySupport   bool `json:"has_priority_support" db:"has_priority_support"`
	HasCustomBranding    bool `json:"has_custom_branding" db:"has_custom_branding"`
	HasAnalytics         bool `json:"has_analytics" db:"has_analytics"`
	HasPromotionFeatures bool `json:"has_promotion_features" db:"has_promotion_features"`

	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Limits extracts the resolved limits/flags record the entitlement engine
// dispatches on.
func (p *SubscriptionPlan) Limits() Limits {
	return Limits{
		Tier:                 p.Tier,
		MaxShops:             p.MaxShops,
		MaxQueuesPerDay:      p.MaxQueuesPerDay,
		MaxStaff:             p.MaxStaff,
		DataRetentionMonths:  p.DataRetentionMonths,
		MaxSmsPerMonth:       p.MaxSmsPerMonth,
		MaxPromotions:        p.MaxPromotions,
		MaxFreePosterDesigns: p.MaxFreePosterDesigns,
		HasAdvancedReports:   p.HasAdvancedReports,
		HasCustomQrCode:      p.HasCustomQrCode,
		HasApiAccess:         p.HasApiAccess,
		HasPrioritySupport:   p.HasPrioritySupport,
		HasCustomBranding:    p.HasCustomBranding,
		HasAnalytics:         p.HasAnalytics,
		HasPromotionFeatures: p.HasPromotionFeatures,
	}
}

// Limits is the concrete limits/flags record a profile's tier resolves to.
// Invalid (NULL) numeric limits mean unlimited.
type Limits struct {
	Tier                 Tier          `json:"tier"`
	MaxShops             sql.NullInt32 `json:"max_shops"`
	MaxQueuesPerDay      sql.NullInt32 `json:"max_queues_per_day"`
	MaxStaff             sql.NullInt32 `json:"max_staff"`
	DataRetentionMonths  sql.NullInt32 `json:"data_retention_months"`
	MaxSmsPerMonth       sql.NullInt32 `json:"max_sms_per_month"`
	MaxPromotions        sql.NullInt32 `json:"max_promotions"`
	MaxFreePosterDesigns sql.NullInt32 `json:"max_free_poster_designs"`

	HasAdvancedReports   bool `json:"has_advanced_reports"`
	HasCustomQrCode      bool `json:"has_custom_qr_code"`
	HasApiAccess         bool `json:"has_api_access"`
	HasPrioritySupport   bool `json:"has_priority_support"`
	HasCustomBranding    bool `json:"has_custom_branding"`
	HasAnalytics         bool `json:"has_analytics"`
	HasPromotionFeatures bool `json:"has_promotion_features"`
}

// FreeTierLimits is the conservative fallback record used when no plan row
// can be found for a tier. Values mirror the free plan as shipped.
func FreeTierLimits() Limits {
	return Limits{
		Tier:                 TierFree,
		MaxShops:             sql.NullInt32{Int32: 1, Valid: true},
		MaxQueuesPerDay:      sql.NullInt32{Int32: 50, Valid: true},
		MaxStaff:             sql.NullInt32{Int32: 1, Valid: true},
		DataRetentionMonths:  sql.NullInt32{Int32: 1, Valid: true},
		MaxSmsPerMonth:       sql.NullInt32{Int32: 10, Valid: true},
		MaxPromotions:        sql.NullInt32{Int32: 0, Valid: true},
		MaxFreePosterDesigns: sql.NullInt32{Int32: 3, Valid: true},
	}
}
