// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"queuely-service/internal/cache"
	"queuely-service/internal/config"
	"queuely-service/internal/db"
	entitlementHandler "queuely-service/internal/handlers/entitlement"
	planHandler "queuely-service/internal/handlers/plan"
	purchaseHandler "queuely-service/internal/handlers/purchase"
	subscriptionHandler "queuely-service/internal/handlers/subscription"
	"queuely-service/internal/middleware"
	"queuely-service/internal/pkg/jwt"
	"queuely-service/internal/repository/postgres"
	"queuely-service/internal/service/billing"
	"queuely-service/internal/service/entitlement"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))

	// ----- JWT Verifier -----
	verifier := jwt.NewVerifier(s.cfg.JWT)

	// ----- Repositories -----
	planRepo := postgres.NewPlanRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	usageRepo := postgres.NewUsageRepository(pool)
	grantRepo := postgres.NewGrantRepository(pool)

	// ----- Cache -----
	entitlementCache := cache.NewEntitlementCache(redisClient, s.cfg.EntitlementCacheTTL)

	// ----- Services -----
	entitlementService := entitlement.NewService(
		planRepo,
		subscriptionRepo,
		usageRepo,
		grantRepo,
		entitlementCache,
		logger,
	)
	billingService := billing.NewService(
		planRepo,
		subscriptionRepo,
		grantRepo,
		entitlementService,
		billing.Prices{
			OneTimeAccess: s.cfg.OneTimeAccessPrice,
			PosterDesign:  s.cfg.PosterDesignPrice,
		},
		logger,
	)

	// ----- Handlers -----
	planHandlerInst := planHandler.NewPlanHandler(billingService)
	subscriptionHandlerInst := subscriptionHandler.NewSubscriptionHandler(billingService, entitlementService)
	entitlementHandlerInst := entitlementHandler.NewEntitlementHandler(entitlementService)
	purchaseHandlerInst := purchaseHandler.NewPurchaseHandler(billingService)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(verifier, s.cfg.ServiceKeyHash)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		PlanHandler:         planHandlerInst,
		SubscriptionHandler: subscriptionHandlerInst,
		EntitlementHandler:  entitlementHandlerInst,
		PurchaseHandler:     purchaseHandlerInst,
		AuthMiddleware:      authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
