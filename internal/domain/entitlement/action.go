// internal/domain/entitlement/action.go
package entitlement

// Action names a metered or flag-gated operation a profile may attempt.
type Action string

const (
	ActionCreateShop            Action = "create_shop"
	ActionCreateQueue           Action = "create_queue"
	ActionAddStaff              Action = "add_staff"
	ActionSendSms               Action = "send_sms"
	ActionCreatePromotion       Action = "create_promotion"
	ActionAccessAdvancedReports Action = "access_advanced_reports"
	ActionAccessAnalytics       Action = "access_analytics"
	ActionAccessApi             Action = "access_api"
	ActionCustomBranding        Action = "custom_branding"
	ActionCustomQrCode          Action = "custom_qr_code"
	ActionPrioritySupport       Action = "priority_support"
	ActionPromotionFeatures     Action = "promotion_features"
)
