// internal/domain/plan/dto.go
package plan

// UpgradeOption is one row of the upgrade offer list shown to a profile on a
// lower tier.
type UpgradeOption struct {
	PlanID             int64   `json:"plan_id"`
	Tier               Tier    `json:"tier"`
	Name               string  `json:"name"`
	NameEn             string  `json:"name_en"`
	MonthlyPrice       float64 `json:"monthly_price"`
	YearlyPrice        float64 `json:"yearly_price"`
	Currency           string  `json:"currency"`
	DiscountPercentage int     `json:"discount_percentage"`
	IsRecommended      bool    `json:"is_recommended"`
	Limits             Limits  `json:"limits"`
}
