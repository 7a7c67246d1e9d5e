// internal/repository/postgres/grant_repository.go
package postgres

import (
	"context"
	"fmt"

	"queuely-service/internal/domain/grant"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GrantRepository struct {
	db *pgxpool.Pool
}

func NewGrantRepository(db *pgxpool.Pool) *GrantRepository {
	return &GrantRepository{db: db}
}

// Create inserts a feature access grant.
func (r *GrantRepository) Create(ctx context.Context, g *grant.FeatureAccessGrant) error {
	query := `
		INSERT INTO feature_access_grants (
			id, profile_id, feature_type, feature_id, price, granted_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		g.ID, g.ProfileID, g.FeatureType, g.FeatureID, g.Price, g.GrantedAt, g.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create feature grant: %w", err)
	}

	return nil
}

// HasActiveGrant reports whether an unexpired grant exists for the exact
// (profile, feature type, feature id) triple.
func (r *GrantRepository) HasActiveGrant(ctx context.Context, profileID string, featureType grant.FeatureType, featureID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM feature_access_grants
			WHERE profile_id = $1 AND feature_type = $2 AND feature_id = $3
			  AND (expires_at IS NULL OR expires_at > NOW())
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, profileID, featureType, featureID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check feature grant: %w", err)
	}

	return exists, nil
}

// Revoke removes grants for the triple and reports whether any row existed.
func (r *GrantRepository) Revoke(ctx context.Context, profileID string, featureType grant.FeatureType, featureID string) (bool, error) {
	query := `
		DELETE FROM feature_access_grants
		WHERE profile_id = $1 AND feature_type = $2 AND feature_id = $3
	`

	result, err := r.db.Exec(ctx, query, profileID, featureType, featureID)
	if err != nil {
		return false, fmt.Errorf("failed to revoke feature grant: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListByProfile retrieves all grants of a profile, newest first.
func (r *GrantRepository) ListByProfile(ctx context.Context, profileID string) ([]grant.FeatureAccessGrant, error) {
	query := `
		SELECT id, profile_id, feature_type, feature_id, price, granted_at, expires_at
		FROM feature_access_grants
		WHERE profile_id = $1
		ORDER BY granted_at DESC
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature grants: %w", err)
	}
	defer rows.Close()

	grants := []grant.FeatureAccessGrant{}
	for rows.Next() {
		var g grant.FeatureAccessGrant
		if err := rows.Scan(&g.ID, &g.ProfileID, &g.FeatureType, &g.FeatureID, &g.Price, &g.GrantedAt, &g.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan feature grant: %w", err)
		}
		grants = append(grants, g)
	}

	return grants, rows.Err()
}
