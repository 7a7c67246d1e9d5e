// internal/repository/postgres/usage_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"queuely-service/internal/domain/usage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsageRepository reads the consumption counters maintained by the product's
// recording paths. The entitlement engine never writes through it.
type UsageRepository struct {
	db *pgxpool.Pool
}

func NewUsageRepository(db *pgxpool.Pool) *UsageRepository {
	return &UsageRepository{db: db}
}

// GetStats fetches the profile's counter row. A profile that has never
// consumed anything has no row; that reads as a zeroed snapshot, not an
// error. When shopID is set, today's queue counter is narrowed to that shop.
func (r *UsageRepository) GetStats(ctx context.Context, profileID, shopID string) (*usage.Stats, error) {
	query := `
		SELECT current_shops, today_queues, current_staff,
		       monthly_sms_sent, active_promotions,
		       free_posters_used, paid_posters_used
		FROM usage_counters
		WHERE profile_id = $1
	`

	var stats usage.Stats
	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&stats.CurrentShops, &stats.TodayQueues, &stats.CurrentStaff,
		&stats.MonthlySmsSent, &stats.ActivePromotions,
		&stats.FreePostersUsed, &stats.PaidPostersUsed,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &usage.Stats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read usage counters: %w", err)
	}

	if shopID != "" {
		shopQueues, err := r.todayQueuesForShop(ctx, profileID, shopID)
		if err != nil {
			return nil, err
		}
		stats.TodayQueues = shopQueues
	}

	return &stats, nil
}

func (r *UsageRepository) todayQueuesForShop(ctx context.Context, profileID, shopID string) (int, error) {
	query := `
		SELECT queues
		FROM queue_daily_counters
		WHERE profile_id = $1 AND shop_id = $2 AND day = CURRENT_DATE
	`

	var queues int
	err := r.db.QueryRow(ctx, query, profileID, shopID).Scan(&queues)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read shop queue counter: %w", err)
	}

	return queues, nil
}
