package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sinok/quotation-api/internal/application/service"
	"github.com/sinok/quotation-api/internal/config"
	"github.com/sinok/quotation-api/internal/infrastructure/database"
	"github.com/sinok/quotation-api/internal/infrastructure/repository"
	"github.com/sinok/quotation-api/internal/presentation/http/handler"
	"github.com/sinok/quotation-api/internal/presentation/http/routes"
	"github.com/sinok/quotation-api/pkg/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the numbering sequence
	if err := database.SeedSequences(db); err != nil {
		log.Fatalf("Failed to seed sequences: %v", err)
	}

	// Initialize repositories
	quotationRepo := repository.NewQuotationRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	quotationService := service.NewQuotationService(quotationRepo, sequenceRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	// Sweep expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to delete expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize handlers
	validator := validation.New()
	handlers := &routes.Handlers{
		Quotation: handler.NewQuotationHandler(quotationService, validator),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
	}

	// Setup routes and start the server
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s (env: %s)", cfg.App.Name, addr, cfg.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
