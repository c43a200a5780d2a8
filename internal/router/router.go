package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clf899/how-much/internal/catalog"
	"github.com/clf899/how-much/internal/middleware"
	"github.com/clf899/how-much/internal/pricing"
)

// Deps is everything the HTTP surface needs.
type Deps struct {
	Catalog *catalog.Handler
	Pricing *pricing.Handler

	// AdminAPIKey guards /admin; empty disables those routes entirely.
	AdminAPIKey string

	Logger *zap.Logger
}

// New assembles the gin engine with all application routes.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CATALOG ─────────────────────────
	r.GET("/services", deps.Catalog.ListServices)
	r.GET("/services/:id", deps.Catalog.GetService)
	r.GET("/categories", deps.Catalog.ListCategories)
	r.GET("/categories/:id/services", deps.Catalog.ListServicesByCategory)

	// ───────────────────────── PRICING ─────────────────────────
	r.POST("/prices", deps.Pricing.SubmitPrice)
	r.GET("/services/:id/prices", deps.Pricing.GetObservations)
	r.GET("/services/:id/summary", deps.Pricing.GetSummary)
	r.GET("/services/:id/comprehensive", deps.Pricing.GetComprehensivePricing)

	// ───────────────────────── ADMIN ─────────────────────────
	if deps.AdminAPIKey != "" {
		admin := r.Group("/admin")
		admin.Use(middleware.RequireAdminKey(deps.AdminAPIKey))
		{
			admin.POST("/scrape", deps.Pricing.ScrapeAndSave)
			admin.GET("/stats", deps.Pricing.Stats)
		}
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
