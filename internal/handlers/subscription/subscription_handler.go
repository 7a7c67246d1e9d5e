// internal/handlers/subscription/subscription_handler.go
package subscription

import (
	"net/http"

	subdomain "queuely-service/internal/domain/subscription"
	"queuely-service/internal/middleware"
	xerrors "queuely-service/internal/pkg/errors"
	"queuely-service/internal/pkg/response"
	"queuely-service/internal/service/billing"
	"queuely-service/internal/service/entitlement"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	billingService     *billing.Service
	entitlementService *entitlement.Service
}

func NewSubscriptionHandler(billingService *billing.Service, entitlementService *entitlement.Service) *SubscriptionHandler {
	return &SubscriptionHandler{
		billingService:     billingService,
		entitlementService: entitlementService,
	}
}

// GetCurrent retrieves the caller's active subscription with its tier
func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	profileID := middleware.MustGetProfileID(c)

	snapshot, err := h.billingService.CurrentSubscription(c.Request.Context(), profileID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNoActiveSubscription) {
			response.NotFound(c, "no active subscription")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription retrieved", snapshot)
}

// UpgradeOptions lists the plans the caller can upgrade to
func (h *SubscriptionHandler) UpgradeOptions(c *gin.Context) {
	profileID := middleware.MustGetProfileID(c)

	tier := h.entitlementService.TierByProfile(c.Request.Context(), profileID)
	options := h.billingService.UpgradeOptions(c.Request.Context(), tier)

	response.Success(c, http.StatusOK, "upgrade options retrieved", gin.H{
		"current_tier": tier,
		"options":      options,
	})
}

// Upgrade moves the caller onto a higher plan
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	profileID := middleware.MustGetProfileID(c)

	var req subdomain.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.billingService.UpgradeSubscription(c.Request.Context(), profileID, req.Tier, req.BillingPeriod)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.Error(c, http.StatusBadRequest, "no active plan for requested tier", err)
			return
		}
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "invalid upgrade request", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to upgrade subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription upgraded", result)
}

// Cancel cancels the caller's active subscription
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	profileID := middleware.MustGetProfileID(c)

	if err := h.billingService.CancelSubscription(c.Request.Context(), profileID); err != nil {
		if xerrors.Is(err, xerrors.ErrNoActiveSubscription) {
			response.NotFound(c, "no active subscription")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to cancel subscription", err)
		return
	}

	response.Success(c, http.StatusOK, "subscription cancelled", nil)
}

// ProcessExpired flips past-due subscriptions to expired (internal callers)
func (h *SubscriptionHandler) ProcessExpired(c *gin.Context) {
	n, err := h.billingService.ProcessExpired(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to process expired subscriptions", err)
		return
	}

	response.Success(c, http.StatusOK, "expired subscriptions processed", gin.H{"expired": n})
}
