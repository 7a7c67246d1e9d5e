// internal/repository/postgres/plan_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"queuely-service/internal/domain/plan"
	xerrors "queuely-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `
	id, tier, name, name_en, description,
	monthly_price, yearly_price, lifetime_price, currency,
	max_shops, max_queues_per_day, max_staff, data_retention_months,
	max_sms_per_month, max_promotions, max_free_poster_designs,
	has_advanced_reports, has_custom_qr_code, has_api_access,
	has_priority_support, has_custom_branding, has_analytics,
	has_promotion_features,
	is_active, created_at, updated_at
`

func scanPlan(row pgx.Row) (*plan.SubscriptionPlan, error) {
	var p plan.SubscriptionPlan
	err := row.Scan(
		&p.ID, &p.Tier, &p.Name, &p.NameEn, &p.Description,
		&p.MonthlyPrice, &p.YearlyPrice, &p.LifetimePrice, &p.Currency,
		&p.MaxShops, &p.MaxQueuesPerDay, &p.MaxStaff, &p.DataRetentionMonths,
		&p.MaxSmsPerMonth, &p.MaxPromotions, &p.MaxFreePosterDesigns,
		&p.HasAdvancedReports, &p.HasCustomQrCode, &p.HasApiAccess,
		&p.HasPrioritySupport, &p.HasCustomBranding, &p.HasAnalytics,
		&p.HasPromotionFeatures,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindActiveByTier retrieves the active plan for a tier with a direct
// filtered query. The catalog is assumed to hold at most one active plan
// per tier; if it holds more, the newest wins.
func (r *PlanRepository) FindActiveByTier(ctx context.Context, tier plan.Tier) (*plan.SubscriptionPlan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM subscription_plans
		WHERE tier = $1 AND is_active
		ORDER BY created_at DESC
		LIMIT 1
	`, planColumns)

	p, err := scanPlan(r.db.QueryRow(ctx, query, tier))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find plan by tier: %w", err)
	}

	return p, nil
}

// FindByID retrieves a plan by ID.
func (r *PlanRepository) FindByID(ctx context.Context, id int64) (*plan.SubscriptionPlan, error) {
	query := fmt.Sprintf(`SELECT %s FROM subscription_plans WHERE id = $1`, planColumns)

	p, err := scanPlan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	return p, nil
}

// ListActive retrieves up to limit active plans ordered by tier then recency.
func (r *PlanRepository) ListActive(ctx context.Context, limit int) ([]plan.SubscriptionPlan, error) {
	if limit < 1 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM subscription_plans
		WHERE is_active
		ORDER BY monthly_price ASC, created_at DESC
		LIMIT $1
	`, planColumns)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := []plan.SubscriptionPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, *p)
	}

	return plans, rows.Err()
}

// Create inserts a plan. Used by catalog seeding and admin tooling; the
// entitlement engine itself never writes plans.
func (r *PlanRepository) Create(ctx context.Context, p *plan.SubscriptionPlan) error {
	query := `
		INSERT INTO subscription_plans (
			tier, name, name_en, description,
			monthly_price, yearly_price, lifetime_price, currency,
			max_shops, max_queues_per_day, max_staff, data_retention_months,
			max_sms_per_month, max_promotions, max_free_poster_designs,
			has_advanced_reports, has_custom_qr_code, has_api_access,
			has_priority_support, has_custom_branding, has_analytics,
			has_promotion_features, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		          $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		p.Tier, p.Name, p.NameEn, p.Description,
		p.MonthlyPrice, p.YearlyPrice, p.LifetimePrice, p.Currency,
		p.MaxShops, p.MaxQueuesPerDay, p.MaxStaff, p.DataRetentionMonths,
		p.MaxSmsPerMonth, p.MaxPromotions, p.MaxFreePosterDesigns,
		p.HasAdvancedReports, p.HasCustomQrCode, p.HasApiAccess,
		p.HasPrioritySupport, p.HasCustomBranding, p.HasAnalytics,
		p.HasPromotionFeatures, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}

	return nil
}
