// internal/domain/usage/entity.go
package usage

// Stats is a read snapshot of a profile's consumption counters. The counters
// are maintained by the product's recording paths; the entitlement engine
// only ever reads them.
type Stats struct {
	CurrentShops     int `json:"current_shops" db:"current_shops"`
	TodayQueues      int `json:"today_queues" db:"today_queues"`
	CurrentStaff     int `json:"current_staff" db:"current_staff"`
	MonthlySmsSent   int `json:"monthly_sms_sent" db:"monthly_sms_sent"`
	ActivePromotions int `json:"active_promotions" db:"active_promotions"`
	FreePostersUsed  int `json:"free_posters_used" db:"free_posters_used"`
	PaidPostersUsed  int `json:"paid_posters_used" db:"paid_posters_used"`
}

// Report is the caller-facing usage payload: the raw counters plus the data
// retention window resolved from the profile's plan.
type Report struct {
	Stats
	DataRetentionMonths int `json:"data_retention_months"`
}
