package handler

import (
	"daes-settlement-engine/internal/adapter/http/middleware"
	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	SettlementSvc  ports.SettlementService
	ReportSvc      ports.ReportService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --- JWT-authenticated routes (operator API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	settlementHandler := NewSettlementHandler(deps.SettlementSvc)
	reportHandler := NewReportHandler(deps.ReportSvc)

	// Treasury creates instructions, bank ops records wire outcomes,
	// ADMIN passes both gates. Reads are open to any operator.
	treasuryOnly := middleware.RequireRole(string(domain.OperatorRoleTreasury))
	bankOpsOnly := middleware.RequireRole(string(domain.OperatorRoleBankOps))

	settlements := v1.Group("/settlements", jwtAuth)
	{
		settlements.POST("", treasuryOnly, settlementHandler.Create)
		settlements.POST("/:id/confirm", bankOpsOnly, settlementHandler.Confirm)
		settlements.GET("/:id", settlementHandler.Get)
		settlements.GET("/:id/payment-order", settlementHandler.GetPaymentOrder)
	}

	reports := v1.Group("/reports", jwtAuth)
	{
		reports.GET("/daily", reportHandler.Daily)
	}

	return r
}
