// internal/handlers/entitlement/entitlement_handler.go
package entitlement

import (
	"net/http"

	entdomain "queuely-service/internal/domain/entitlement"
	"queuely-service/internal/middleware"
	"queuely-service/internal/pkg/response"
	"queuely-service/internal/service/entitlement"

	"github.com/gin-gonic/gin"
)

type EntitlementHandler struct {
	entitlementService *entitlement.Service
}

func NewEntitlementHandler(entitlementService *entitlement.Service) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementService: entitlementService,
	}
}

// resolveProfileID prefers the authenticated identity; service callers pass
// the profile they are asking about as a query parameter.
func resolveProfileID(c *gin.Context) string {
	if id, ok := middleware.GetProfileID(c); ok {
		return id
	}
	return c.Query("profile_id")
}

// CheckAction answers whether the profile may perform an action right now
func (h *EntitlementHandler) CheckAction(c *gin.Context) {
	profileID := resolveProfileID(c)
	if profileID == "" {
		response.Error(c, http.StatusBadRequest, "profile_id is required", nil)
		return
	}

	action := c.Query("action")
	if action == "" {
		response.Error(c, http.StatusBadRequest, "action is required", nil)
		return
	}
	shopID := c.Query("shop_id")

	allowed := h.entitlementService.CanPerformAction(c.Request.Context(), profileID, entdomain.Action(action), shopID)

	response.Success(c, http.StatusOK, "entitlement checked", gin.H{
		"action":  action,
		"allowed": allowed,
	})
}

// GetUsage reports the profile's usage against its resolved limits
func (h *EntitlementHandler) GetUsage(c *gin.Context) {
	profileID := resolveProfileID(c)
	if profileID == "" {
		response.Error(c, http.StatusBadRequest, "profile_id is required", nil)
		return
	}

	report := h.entitlementService.GetUsageStats(c.Request.Context(), profileID)

	response.Success(c, http.StatusOK, "usage retrieved", report)
}

// CheckPoster answers whether the profile can use a poster design
func (h *EntitlementHandler) CheckPoster(c *gin.Context) {
	profileID := resolveProfileID(c)
	if profileID == "" {
		response.Error(c, http.StatusBadRequest, "profile_id is required", nil)
		return
	}

	posterID := c.Param("poster_id")
	accessible := h.entitlementService.IsPosterAccessible(c.Request.Context(), profileID, posterID)

	response.Success(c, http.StatusOK, "poster access checked", gin.H{
		"poster_id":  posterID,
		"accessible": accessible,
	})
}
