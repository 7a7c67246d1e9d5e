// internal/app/router.go
package app

import (
	entitlementHandler "queuely-service/internal/handlers/entitlement"
	planHandler "queuely-service/internal/handlers/plan"
	purchaseHandler "queuely-service/internal/handlers/purchase"
	subscriptionHandler "queuely-service/internal/handlers/subscription"
	"queuely-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	PlanHandler         *planHandler.PlanHandler
	SubscriptionHandler *subscriptionHandler.SubscriptionHandler
	EntitlementHandler  *entitlementHandler.EntitlementHandler
	PurchaseHandler     *purchaseHandler.PurchaseHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Plan Catalog ====================
	api.GET("/plans", h.PlanHandler.ListPlans)

	// ==================== Subscription ====================
	subscriptions := api.Group("/subscription")
	subscriptions.Use(h.AuthMiddleware.Auth())
	{
		subscriptions.GET("", h.SubscriptionHandler.GetCurrent)
		subscriptions.GET("/upgrade-options", h.SubscriptionHandler.UpgradeOptions)
		subscriptions.POST("/upgrade", h.SubscriptionHandler.Upgrade)
		subscriptions.POST("/cancel", h.SubscriptionHandler.Cancel)
	}

	// ==================== Entitlements ====================
	// Other services ask these questions on a profile's behalf, so a valid
	// service key is accepted in place of a bearer token.
	entitlements := api.Group("/entitlements")
	entitlements.Use(h.AuthMiddleware.AuthOrService())
	{
		entitlements.GET("/check", h.EntitlementHandler.CheckAction)
		entitlements.GET("/usage", h.EntitlementHandler.GetUsage)
		entitlements.GET("/posters/:poster_id", h.EntitlementHandler.CheckPoster)
	}

	// ==================== Purchases ====================
	purchases := api.Group("/purchases")
	purchases.Use(h.AuthMiddleware.Auth())
	{
		purchases.POST("/feature", h.PurchaseHandler.PurchaseFeature)
		purchases.POST("/posters/:poster_id", h.PurchaseHandler.PurchasePoster)
	}

	// ==================== Internal Maintenance ====================
	internalGroup := api.Group("/internal")
	internalGroup.Use(h.AuthMiddleware.ServiceAuth())
	{
		internalGroup.POST("/subscriptions/process-expired", h.SubscriptionHandler.ProcessExpired)
	}
}
