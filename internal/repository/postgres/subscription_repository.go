// internal/repository/postgres/subscription_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"queuely-service/internal/domain/subscription"
	xerrors "queuely-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

const subscriptionColumns = `
	id, profile_id, plan_id, status, billing_period,
	price_per_period, currency, start_date, end_date,
	auto_renew, cancelled_at, created_at, updated_at
`

func scanSubscription(row pgx.Row) (*subscription.ProfileSubscription, error) {
	var s subscription.ProfileSubscription
	err := row.Scan(
		&s.ID, &s.ProfileID, &s.PlanID, &s.Status, &s.BillingPeriod,
		&s.PricePerPeriod, &s.Currency, &s.StartDate, &s.EndDate,
		&s.AutoRenew, &s.CancelledAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a subscription row.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.ProfileSubscription) error {
	query := `
		INSERT INTO profile_subscriptions (
			id, profile_id, plan_id, status, billing_period,
			price_per_period, currency, start_date, end_date, auto_renew
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		sub.ID, sub.ProfileID, sub.PlanID, sub.Status, sub.BillingPeriod,
		sub.PricePerPeriod, sub.Currency, sub.StartDate, sub.EndDate, sub.AutoRenew,
	).Scan(&sub.CreatedAt, &sub.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// FindLatestByProfile retrieves the most recent subscription row for a
// profile regardless of status.
func (r *SubscriptionRepository) FindLatestByProfile(ctx context.Context, profileID string) (*subscription.ProfileSubscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profile_subscriptions
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, subscriptionColumns)

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, profileID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return sub, nil
}

// FindActiveByProfile retrieves the profile's active subscription.
func (r *SubscriptionRepository) FindActiveByProfile(ctx context.Context, profileID string) (*subscription.ProfileSubscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profile_subscriptions
		WHERE profile_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, subscriptionColumns)

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, profileID, subscription.StatusActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}

	return sub, nil
}

// ExpireActiveByProfile flips any currently active subscriptions of the
// profile to expired and stamps their end date. Returns the number of rows
// it touched.
func (r *SubscriptionRepository) ExpireActiveByProfile(ctx context.Context, profileID string, endDate time.Time) (int64, error) {
	query := `
		UPDATE profile_subscriptions
		SET status = $1, end_date = $2, updated_at = $3
		WHERE profile_id = $4 AND status = $5
	`

	result, err := r.db.Exec(ctx, query,
		subscription.StatusExpired, endDate, time.Now(), profileID, subscription.StatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}

	return result.RowsAffected(), nil
}

// Cancel marks a subscription cancelled.
func (r *SubscriptionRepository) Cancel(ctx context.Context, id string, cancelledAt time.Time) error {
	query := `
		UPDATE profile_subscriptions
		SET status = $1, cancelled_at = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`

	result, err := r.db.Exec(ctx, query,
		subscription.StatusCancelled, cancelledAt, time.Now(), id, subscription.StatusActive)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// ExpireDue flips active subscriptions whose end date has passed to expired.
// Returns the number of rows it touched.
func (r *SubscriptionRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE profile_subscriptions
		SET status = $1, updated_at = $2
		WHERE status = $3 AND end_date IS NOT NULL AND end_date < $4
	`

	result, err := r.db.Exec(ctx, query,
		subscription.StatusExpired, time.Now(), subscription.StatusActive, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire due subscriptions: %w", err)
	}

	return result.RowsAffected(), nil
}
