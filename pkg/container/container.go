package container

import (
	"context"
	"fmt"
	"os"

	"bookstore-catalog/internal/config"
	catalogHandler "bookstore-catalog/internal/domains/catalog/handler"
	"bookstore-catalog/internal/domains/catalog/repository"
	"bookstore-catalog/internal/domains/catalog/seed"
	catalogService "bookstore-catalog/internal/domains/catalog/service"
	feedbackHandler "bookstore-catalog/internal/domains/feedback/handler"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
// Build order: config -> catalog (+ seed) -> services -> handlers.
type Container struct {
	Config *config.Config

	// ========================================
	// STORAGE
	// ========================================
	Catalog repository.Catalog

	// ========================================
	// SERVICE LAYER
	// ========================================
	CatalogService catalogService.CatalogService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	CatalogHandler  *catalogHandler.CatalogHandler
	FeedbackHandler *feedbackHandler.FeedbackHandler

	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter *middleware.RateLimiter
}

// Build wires the dependency graph for an already loaded config.
func Build(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: CATALOG + SEED DATA
	// ========================================
	c.Catalog = repository.NewMemoryCatalog()

	if cfg.Catalog.SeedDefaults {
		if err := seed.Defaults(c.Catalog); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// ========================================
	// STEP 2: SERVICES
	// ========================================
	c.CatalogService = catalogService.NewCatalogService(c.Catalog)

	if cfg.Catalog.SeedFile != "" {
		if err := c.importSeedFile(cfg.Catalog.SeedFile); err != nil {
			return nil, err
		}
	}

	logger.Info("Catalog ready", map[string]interface{}{
		"categories": len(c.Catalog.GetCategories()),
		"books":      c.Catalog.CountBooks(),
	})

	// ========================================
	// STEP 3: HANDLERS + MIDDLEWARE STATE
	// ========================================
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
	c.FeedbackHandler = feedbackHandler.NewFeedbackHandler(cfg.HTTP.FeedbackRedirect)

	if cfg.HTTP.RateLimitRPS > 0 {
		c.RateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	}

	return c, nil
}

func (c *Container) importSeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed workbook: %w", err)
	}
	defer f.Close()

	result, err := c.CatalogService.ImportWorkbook(context.Background(), f)
	if err != nil {
		return fmt.Errorf("failed to import seed workbook %s: %w", path, err)
	}

	logger.Info("Seed workbook imported", map[string]interface{}{
		"file":       path,
		"categories": result.Categories,
		"books":      result.Books,
	})
	return nil
}

// Cleanup releases resources on shutdown. The in-memory catalog holds
// nothing that needs closing; this only records the shutdown.
func (c *Container) Cleanup() {
	logger.Debug("Container cleaned up")
}
