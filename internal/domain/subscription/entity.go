// internal/domain/subscription/entity.go
package subscription

import (
	"database/sql"
	"time"

	"queuely-service/internal/domain/plan"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

type BillingPeriod string

const (
	PeriodMonthly BillingPeriod = "monthly"
	PeriodYearly  BillingPeriod = "yearly"
)

// Valid reports whether p is one of the supported billing periods.
func (p BillingPeriod) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

// ProfileSubscription links a profile to a plan for a billing period.
// A profile accumulates subscription rows over time; only the row with
// status active is authoritative for entitlements. PricePerPeriod is a
// snapshot taken at upgrade time, not the live plan price.
type ProfileSubscription struct {
	ID             string        `json:"id" db:"id"`
	ProfileID      string        `json:"profile_id" db:"profile_id"`
	PlanID         int64         `json:"plan_id" db:"plan_id"`
	Status         Status        `json:"status" db:"status"`
	BillingPeriod  BillingPeriod `json:"billing_period" db:"billing_period"`
	PricePerPeriod float64       `json:"price_per_period" db:"price_per_period"`
	Currency       string        `json:"currency" db:"currency"`
	StartDate      time.Time     `json:"start_date" db:"start_date"`
	EndDate        sql.NullTime  `json:"end_date,omitempty" db:"end_date"`
	AutoRenew      bool          `json:"auto_renew" db:"auto_renew"`
	CancelledAt    sql.NullTime  `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// Snapshot is the engine's answer to "what is this profile subscribed to":
// the subscription row plus the tier it resolves to.
type Snapshot struct {
	Subscription ProfileSubscription `json:"subscription"`
	Tier         plan.Tier           `json:"tier"`
}
