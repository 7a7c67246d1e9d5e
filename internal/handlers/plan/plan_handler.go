// internal/handlers/plan/plan_handler.go
package plan

import (
	"net/http"

	"queuely-service/internal/pkg/response"
	"queuely-service/internal/service/billing"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	billingService *billing.Service
}

func NewPlanHandler(billingService *billing.Service) *PlanHandler {
	return &PlanHandler{
		billingService: billingService,
	}
}

// ListPlans retrieves the active plan catalog
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.billingService.ActivePlans(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list plans", err)
		return
	}

	response.Success(c, http.StatusOK, "plans retrieved", plans)
}
