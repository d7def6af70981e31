package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/soccerlab/rater-api/api/dimensions"
	"github.com/soccerlab/rater-api/api/export"
	"github.com/soccerlab/rater-api/api/health"
	"github.com/soccerlab/rater-api/api/raters"
	"github.com/soccerlab/rater-api/api/sessions"
	"github.com/soccerlab/rater-api/api/types"
	"github.com/soccerlab/rater-api/api/version"
	_ "github.com/soccerlab/rater-api/docs/swagger"
	"github.com/soccerlab/rater-api/internal/services/metadata"
	"github.com/soccerlab/rater-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Fall back to the configured dimensions when the caller did not set them
	if len(deps.Dimensions) == 0 {
		deps.Dimensions = cfg.Rating.Dimensions
	}

	// The metadata service tolerates a nil repository, so it can always
	// be constructed; clips without a database row get placeholders.
	if deps.MetadataService == nil {
		initializeMetadataService(deps)
	}

	// Register rater identity routes with general rate limiting (10 req/s, burst of 20)
	ratersGroup := v1.Group("/raters")
	ratersGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	raters.RegisterRoutes(ratersGroup, deps)

	// Register session routes with moderate rate limiting (20 req/s, burst of 30)
	// Higher limits so rapid rating submissions are not throttled
	sessionsGroup := v1.Group("/sessions")
	sessionsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 30))
	sessions.RegisterRoutes(sessionsGroup, deps)

	// Register dimension routes with general rate limiting (10 req/s, burst of 20)
	dimensionsGroup := v1.Group("/dimensions")
	dimensionsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	dimensions.RegisterRoutes(dimensionsGroup, deps)

	// Register export routes with strict rate limiting (1 req/s, burst of 2)
	// Exports walk the whole record directory, so keep them rare
	exportGroup := v1.Group("/export")
	exportGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2))
	export.RegisterRoutes(exportGroup, deps)

	return nil
}

// initializeMetadataService creates and configures the metadata service
func initializeMetadataService(deps *types.Dependencies) {
	if deps.DB != nil && deps.DB.DB != nil {
		deps.MetadataService = metadata.NewService(metadata.NewRepository(deps.DB.DB))
		return
	}
	deps.MetadataService = metadata.NewService(nil)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
