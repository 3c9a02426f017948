package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/dataset"
	"factory-sim-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router serving the generated
// dataset read-only.
func NewRouter(ds *dataset.Dataset, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(ds)

	// Rate limit per client IP, burst of 5.
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), 5)

	// The dataset is immutable once generated, so responses cache aggressively.
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/tables", caching, handler.ListTables)
		api.GET("/tables/:name", caching, handler.GetTable)
	}

	return r
}
