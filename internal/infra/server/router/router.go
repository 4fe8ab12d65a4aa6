// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/deolhonanota/backend/internal/integration/entrypoint/controller"
	"github.com/deolhonanota/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	categoryController   *controller.CategoryController
	prefixController     *controller.CategoryPrefixController
	receiptController    *controller.ReceiptController
	dashboardController  *controller.DashboardController
	suggestionController *controller.SuggestionController
	mutationRateLimiter  *middleware.RateLimiter
	aiRateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	prefixController *controller.CategoryPrefixController,
	receiptController *controller.ReceiptController,
	dashboardController *controller.DashboardController,
	suggestionController *controller.SuggestionController,
	mutationRateLimiter *middleware.RateLimiter,
	aiRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		categoryController:   categoryController,
		prefixController:     prefixController,
		receiptController:    receiptController,
		dashboardController:  dashboardController,
		suggestionController: suggestionController,
		mutationRateLimiter:  mutationRateLimiter,
		aiRateLimiter:        aiRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Paths follow the pt-BR
// contract the scanning frontend consumes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Receipt routes
		receipts := v1.Group("/notas-fiscais")
		{
			receipts.GET("", r.receiptController.List)
			receipts.GET("/:id", r.receiptController.Get)
			receipts.POST("", r.mutationRateLimiter.Middleware(), r.receiptController.Create)
		}

		// Category and prefix rule routes. The static /prefixos segment
		// comes before the :id parameter routes on purpose.
		categories := v1.Group("/categorias")
		{
			categories.GET("", r.categoryController.List)

			prefixes := categories.Group("/prefixos")
			{
				prefixes.GET("/listar", r.prefixController.List)
				prefixes.POST("/testar", r.prefixController.Test)
				prefixes.POST("", r.mutationRateLimiter.Middleware(), r.prefixController.Create)
				prefixes.PUT("/:id", r.mutationRateLimiter.Middleware(), r.prefixController.Update)
				prefixes.DELETE("/:id", r.mutationRateLimiter.Middleware(), r.prefixController.Delete)
			}
		}

		// Report routes
		reports := v1.Group("/relatorios")
		{
			reports.GET("/mensal", r.dashboardController.MonthlySpending)
			reports.GET("/:ano/:mes/semanas", r.dashboardController.WeeklyBreakdown)
			reports.GET("/:ano/:mes/resumo", r.dashboardController.MonthlySummary)
		}

		// AI suggestion routes
		suggestions := v1.Group("/sugestoes")
		{
			suggestions.POST("/prefixos", r.aiRateLimiter.Middleware(), r.suggestionController.Suggest)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
