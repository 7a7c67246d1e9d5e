// internal/service/entitlement/poster.go
package entitlement

import (
	"context"
	"strconv"
	"strings"

	"queuely-service/internal/domain/grant"

	"go.uber.org/zap"
)

// freePosterCount is the tier-independent "first N designs are free" rule.
// It predates the plan-driven MaxFreePosterDesigns quota and the two are
// OR'd together; see IsPosterAccessible.
const freePosterCount = 3

// IsPosterAccessible reports whether the profile may use the poster design.
//
// Access comes from any one of: an explicit purchased grant for this exact
// poster, the poster being one of the first three designs, the plan having
// an unlimited free-poster quota, or the poster's ordinal falling inside the
// plan's free-poster quota. Any failure denies.
func (s *Service) IsPosterAccessible(ctx context.Context, profileID, posterID string) bool {
	granted, err := s.grantStore.HasActiveGrant(ctx, profileID, grant.FeaturePosterDesign, posterID)
	if err != nil {
		s.logger.Error("poster access check failed to read grants",
			zap.String("profile_id", profileID),
			zap.String("poster_id", posterID),
			zap.Error(err),
		)
		return false
	}
	if granted {
		return true
	}

	ordinal, err := posterOrdinal(posterID)
	if err != nil {
		s.logger.Error("poster access check failed to parse poster id",
			zap.String("profile_id", profileID),
			zap.String("poster_id", posterID),
			zap.Error(err),
		)
		return false
	}

	if ordinal <= freePosterCount {
		return true
	}

	_, limits, err := s.resolveSnapshot(ctx, profileID)
	if err != nil {
		s.logger.Error("poster access check failed to resolve limits",
			zap.String("profile_id", profileID),
			zap.String("poster_id", posterID),
			zap.Error(err),
		)
		return false
	}

	if !limits.MaxFreePosterDesigns.Valid {
		return true
	}

	return ordinal <= int(limits.MaxFreePosterDesigns.Int32)
}

// posterOrdinal extracts the design's ordinal number by stripping every
// non-digit character from the id ("poster_012" -> 12). An id with no
// digits reads as ordinal 0.
func posterOrdinal(posterID string) (int, error) {
	var digits strings.Builder
	for _, r := range posterID {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0, nil
	}

	return strconv.Atoi(digits.String())
}
