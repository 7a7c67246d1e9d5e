// internal/domain/grant/entity.go
package grant

import (
	"database/sql"
	"time"
)

// FeatureType names the purchasable feature categories.
type FeatureType string

const (
	FeaturePosterDesign    FeatureType = "poster_design"
	FeatureApiAccess       FeatureType = "api_access"
	FeatureCustomBranding  FeatureType = "custom_branding"
	FeaturePrioritySupport FeatureType = "priority_support"
)

// Valid reports whether t is a known feature type.
func (t FeatureType) Valid() bool {
	switch t {
	case FeaturePosterDesign, FeatureApiAccess, FeatureCustomBranding, FeaturePrioritySupport:
		return true
	}
	return false
}

// FeatureAccessGrant is an explicit, possibly time-boxed unlock of a feature
// or item outside the plan's default flags, created by a purchase.
type FeatureAccessGrant struct {
	ID          string       `json:"id" db:"id"`
	ProfileID   string       `json:"profile_id" db:"profile_id"`
	FeatureType FeatureType  `json:"feature_type" db:"feature_type"`
	FeatureID   string       `json:"feature_id" db:"feature_id"`
	Price       float64      `json:"price" db:"price"`
	GrantedAt   time.Time    `json:"granted_at" db:"granted_at"`
	ExpiresAt   sql.NullTime `json:"expires_at,omitempty" db:"expires_at"`
}

// IsActive reports whether the grant is in force at the given time.
// A grant with no expiry never lapses.
func (g *FeatureAccessGrant) IsActive(now time.Time) bool {
	return !g.ExpiresAt.Valid || g.ExpiresAt.Time.After(now)
}
