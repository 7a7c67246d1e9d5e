// internal/domain/subscription/dto.go
package subscription

import "queuely-service/internal/domain/plan"

type UpgradeRequest struct {
	Tier          plan.Tier     `json:"tier" binding:"required"`
	BillingPeriod BillingPeriod `json:"billing_period" binding:"required,oneof=monthly yearly"`
}

// UpgradeResult is returned to the caller after a successful upgrade: the new
// subscription row plus the limits the profile is now entitled to.
type UpgradeResult struct {
	Subscription ProfileSubscription `json:"subscription"`
	Limits       plan.Limits         `json:"limits"`
}

type PurchaseFeatureRequest struct {
	Feature      string `json:"feature" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
}
