// internal/service/billing/purchase.go
package billing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"queuely-service/internal/domain/grant"
	xerrors "queuely-service/internal/pkg/errors"
)

// purchasableFeatures maps the feature names accepted on the purchase
// endpoint to grant feature types. Poster designs have their own flow.
var purchasableFeatures = map[string]grant.FeatureType{
	"api_access":       grant.FeatureApiAccess,
	"custom_branding":  grant.FeatureCustomBranding,
	"priority_support": grant.FeaturePrioritySupport,
}

// PurchaseOneTimeAccess grants a profile time-boxed access to a feature
// outside its plan. An unknown feature name is rejected with
// ErrUnknownFeature; storage failures are logged and reported as an
// unsuccessful purchase, not an error.
func (s *Service) PurchaseOneTimeAccess(ctx context.Context, profileID, feature string, durationDays int) (bool, error) {
	featureType, ok := purchasableFeatures[feature]
	if !ok {
		return false, fmt.Errorf("billing: feature %q: %w", feature, xerrors.ErrUnknownFeature)
	}
	if durationDays <= 0 {
		return false, fmt.Errorf("billing: duration %d days: %w", durationDays, xerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	g := &grant.FeatureAccessGrant{
		ID:          ulid.Make().String(),
		ProfileID:   profileID,
		FeatureType: featureType,
		Price:       s.prices.OneTimeAccess,
		GrantedAt:   now,
		ExpiresAt:   nullTime(now.AddDate(0, 0, durationDays)),
	}
	if err := s.grants.Create(ctx, g); err != nil {
		s.logger.Error("create one-time access grant",
			zap.String("profile_id", profileID),
			zap.String("feature", feature),
			zap.Error(err))
		return false, nil
	}

	s.logger.Info("one-time access purchased",
		zap.String("profile_id", profileID),
		zap.String("feature", feature),
		zap.Int("duration_days", durationDays))
	return true, nil
}

// PurchasePosterDesign grants permanent access to a single poster design.
// Storage failures are logged and reported as an unsuccessful purchase.
func (s *Service) PurchasePosterDesign(ctx context.Context, profileID, posterID string) bool {
	g := &grant.FeatureAccessGrant{
		ID:          ulid.Make().String(),
		ProfileID:   profileID,
		FeatureType: grant.FeaturePosterDesign,
		FeatureID:   posterID,
		Price:       s.prices.PosterDesign,
		GrantedAt:   time.Now().UTC(),
	}
	if err := s.grants.Create(ctx, g); err != nil {
		s.logger.Error("create poster design grant",
			zap.String("profile_id", profileID),
			zap.String("poster_id", posterID),
			zap.Error(err))
		return false
	}

	s.logger.Info("poster design purchased",
		zap.String("profile_id", profileID),
		zap.String("poster_id", posterID))
	return true
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}
