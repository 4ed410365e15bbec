// Package api wires the HTTP surface: one scrape endpoint plus health.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sowtrack/seedscrape/api/handler"
	"github.com/sowtrack/seedscrape/api/middleware"
	"github.com/sowtrack/seedscrape/cache"
	"github.com/sowtrack/seedscrape/config"
	"github.com/sowtrack/seedscrape/vendors"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     Auth (if enabled) → RateLimit
//
// Health endpoint is intentionally outside auth so monitoring probes always work.
func NewRouter(p handler.Pipeline, registry *vendors.Registry, cfg *config.Config, cc *cache.Cache, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")

	// Health — no auth required.
	v1.GET("/health", handler.Health(registry, startTime))

	// Protected group — auth + rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	protected.POST("/scrape", handler.Scrape(p, cfg, cc))

	return r
}
