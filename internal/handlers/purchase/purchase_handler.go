// internal/handlers/purchase/purchase_handler.go
package purchase

import (
	"net/http"

	subdomain "queuely-service/internal/domain/subscription"
	"queuely-service/internal/middleware"
	xerrors "queuely-service/internal/pkg/errors"
	"queuely-service/internal/pkg/response"
	"queuely-service/internal/service/billing"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	billingService *billing.Service
}

func NewPurchaseHandler(billingService *billing.Service) *PurchaseHandler {
	return &PurchaseHandler{
		billingService: billingService,
	}
}

// PurchaseFeature buys time-boxed access to a feature outside the plan
func (h *PurchaseHandler) PurchaseFeature(c *gin.Context) {
	profileID := middleware.MustGetProfileID(c)

	var req subdomain.PurchaseFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	ok, err := h.billingService.PurchaseOneTimeAccess(c.Request.Context(), profileID, req.Feature, req.DurationDays)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrUnknownFeature) {
			response.Error(c, http.StatusBadRequest, "unknown feature", err)
			return
		}
		response.Error(c, http.StatusBadRequest, "invalid purchase request", err)
		return
	}

	response.Success(c, http.StatusOK, "purchase processed", gin.H{"purchased": ok})
}

// PurchasePoster buys permanent access to a poster design
func (h *PurchaseHandler) PurchasePoster(c *gin.Context) {
	profileID := middleware.MustGetProfileID(c)
	posterID := c.Param("poster_id")

	ok := h.billingService.PurchasePosterDesign(c.Request.Context(), profileID, posterID)

	response.Success(c, http.StatusOK, "purchase processed", gin.H{"purchased": ok})
}
