// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/deolhonanota/backend/config"
	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/application/usecase/category"
	"github.com/deolhonanota/backend/internal/application/usecase/categoryprefix"
	"github.com/deolhonanota/backend/internal/application/usecase/dashboard"
	"github.com/deolhonanota/backend/internal/application/usecase/receipt"
	"github.com/deolhonanota/backend/internal/application/usecase/suggestion"
	"github.com/deolhonanota/backend/internal/infra/server/router"
	"github.com/deolhonanota/backend/internal/integration/adapters"
	"github.com/deolhonanota/backend/internal/integration/cache"
	"github.com/deolhonanota/backend/internal/integration/entrypoint/controller"
	"github.com/deolhonanota/backend/internal/integration/entrypoint/middleware"
	"github.com/deolhonanota/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	SeedCategories *category.SeedCategoriesUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	prefixRepo := persistence.NewCategoryPrefixRepository(db)
	receiptRepo := persistence.NewReceiptRepository(db)

	// Create the report cache. Without a Redis address every report is
	// recomputed per request.
	var reportCache adapter.ReportCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		reportCache = cache.NewRedisReportCache(client)
	} else {
		reportCache = cache.NewNoopReportCache()
	}

	// Create adapters/services
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	seedCategoriesUseCase := category.NewSeedCategoriesUseCase(categoryRepo)

	// Create prefix rule use cases
	listPrefixesUseCase := categoryprefix.NewListPrefixesUseCase(prefixRepo)
	createPrefixUseCase := categoryprefix.NewCreatePrefixUseCase(prefixRepo, categoryRepo, reportCache)
	updatePrefixUseCase := categoryprefix.NewUpdatePrefixUseCase(prefixRepo, categoryRepo, reportCache)
	deletePrefixUseCase := categoryprefix.NewDeletePrefixUseCase(prefixRepo, reportCache)
	testPrefixUseCase := categoryprefix.NewTestPrefixUseCase(prefixRepo)

	// Create receipt use cases
	createReceiptUseCase := receipt.NewCreateReceiptUseCase(receiptRepo, reportCache)
	listReceiptsUseCase := receipt.NewListReceiptsUseCase(receiptRepo)
	getReceiptUseCase := receipt.NewGetReceiptUseCase(receiptRepo)

	// Create report use cases
	monthlySpendingUseCase := dashboard.NewGetMonthlySpendingUseCase(receiptRepo, reportCache)
	weeklyBreakdownUseCase := dashboard.NewGetWeeklyBreakdownUseCase(receiptRepo, prefixRepo, reportCache)
	monthlySummaryUseCase := dashboard.NewGetMonthlySummaryUseCase(weeklyBreakdownUseCase, categoryRepo, reportCache)

	// Create AI suggestion use case
	suggestPrefixesUseCase := suggestion.NewSuggestPrefixesUseCase(receiptRepo, prefixRepo, categoryRepo, geminiService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	categoryController := controller.NewCategoryController(listCategoriesUseCase)

	prefixController := controller.NewCategoryPrefixController(
		listPrefixesUseCase,
		createPrefixUseCase,
		updatePrefixUseCase,
		deletePrefixUseCase,
		testPrefixUseCase,
	)

	receiptController := controller.NewReceiptController(
		createReceiptUseCase,
		listReceiptsUseCase,
		getReceiptUseCase,
	)

	dashboardController := controller.NewDashboardController(
		monthlySpendingUseCase,
		weeklyBreakdownUseCase,
		monthlySummaryUseCase,
	)

	suggestionController := controller.NewSuggestionController(suggestPrefixesUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var mutationRateLimiter, aiRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		mutationRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
		aiRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		mutationRateLimiter = middleware.NewRateLimiter()
		aiRateLimiter = middleware.NewRateLimiterWithConfig(5, 1*time.Minute)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		prefixController,
		receiptController,
		dashboardController,
		suggestionController,
		mutationRateLimiter,
		aiRateLimiter,
	)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		SeedCategories: seedCategoriesUseCase,
	}
}
