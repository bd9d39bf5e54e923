package main

import (
	"net/http"
	"os"
	"time"

	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/pkg/container"
	"bookstore-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	middleware.TrustProxies(router, c.Config.HTTP.TrustedProxies)

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.CORS(),
	)
	if c.RateLimiter != nil {
		router.Use(c.RateLimiter.Middleware())
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(api, c)
		setupFeedbackRoutes(api, c)
	}

	setupStaticFiles(router, c.Config.HTTP.StaticDir)

	return router
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupCatalogRoutes(api *gin.RouterGroup, c *container.Container) {
	categories := api.Group("/categories")
	{
		categories.GET("", c.CatalogHandler.ListCategories)
		categories.POST("/import", c.CatalogHandler.ImportBooks)
		categories.GET("/:category/books", c.CatalogHandler.ListBooks)
		categories.GET("/:category/books/export", c.CatalogHandler.ExportBooks)
		categories.POST("/:category/books", c.CatalogHandler.CreateBook)
	}

	books := api.Group("/books")
	{
		books.GET("/:id", c.CatalogHandler.GetBook)
		books.PUT("/:id", c.CatalogHandler.UpdateBook)
		books.DELETE("/:id", c.CatalogHandler.DeleteBook)
	}
}

// ========================================
// FEEDBACK ROUTES
// ========================================
func setupFeedbackRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/feedbacks", c.FeedbackHandler.Submit)
}

// ========================================
// STOREFRONT
// ========================================
// The storefront is served for every path the API does not claim.
func setupStaticFiles(router *gin.Engine, dir string) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Info("Static directory not found, storefront disabled", map[string]interface{}{"dir": dir})
		return
	}

	// Directories without an index.html list nothing.
	files := http.FileServer(gin.Dir(dir, false))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.NotFound(c, "Not found")
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"name":      appCtx.Config.App.Name,
			"version":   appCtx.Config.App.Version,
			"catalog": gin.H{
				"categories": len(appCtx.CatalogService.ListCategories(c.Request.Context())),
				"books":      appCtx.CatalogService.CountBooks(c.Request.Context()),
			},
		})
	}
}
