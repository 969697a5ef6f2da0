package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sinok/quotation-api/internal/config"
	domainRepo "github.com/sinok/quotation-api/internal/domain/repository"
	"github.com/sinok/quotation-api/internal/presentation/http/handler"
	"github.com/sinok/quotation-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Quotation *handler.QuotationHandler
	Analytics *handler.AnalyticsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		api.Use(rateLimiter.Middleware())

		idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		})

		quotations := api.Group("/quotations")
		{
			quotations.GET("", h.Quotation.List)
			quotations.POST("", idempotency, h.Quotation.Create)
			quotations.GET("/:id", h.Quotation.Get)
			quotations.PUT("/:id", h.Quotation.Update)
			quotations.DELETE("/:id", h.Quotation.Delete)
		}

		api.GET("/analytics", h.Analytics.Get)
	}

	return router
}
