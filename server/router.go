package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/handler"
	"github.com/rabinshresthaaa/CoverPage/middleware"
	"github.com/rabinshresthaaa/CoverPage/service"
	"github.com/redis/go-redis/v9"
)

// Deps are the collaborators the router needs besides configuration.
type Deps struct {
	Source service.AssetSource
	// Redis backs the shared rate limiter; nil falls back to in-memory limits.
	Redis *redis.Client
	// Gatherer serves /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()

	// Metrics and the access log wrap Recovery so panicking requests are
	// still observed, as 500s.
	router.Use(middleware.RequestID())
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())
	router.Use(cacheMiddleware())

	if cfg.Metrics.Enabled {
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	assembler := service.NewAssembler(deps.Source, &cfg.Assets)
	coverHandler := handler.NewCoverHandler(assembler)
	healthHandler := handler.NewHealthHandler(deps.Source, assembler.RequiredAssets()...)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	covers := router.Group("")
	if cfg.Auth.Enabled {
		tokens := handler.NewTokenHandler(cfg)
		router.POST("/api/auth/token", tokens.Issue)

		covers.Use(middleware.AuthMiddleware(&cfg.Auth))
		covers.GET("/api/auth/me", tokens.Whoami)
	}
	if cfg.RateLimit.Enabled {
		rl := cfg.RateLimit
		window := time.Duration(rl.WindowSeconds) * time.Second
		if deps.Redis != nil {
			covers.Use(middleware.RedisRateLimit(deps.Redis, rl.RequestsPerSecond, rl.Burst, window))
		} else {
			covers.Use(middleware.RateLimit(rl.RequestsPerSecond, rl.Burst, window))
		}
	}

	covers.POST("/api/cover/download", coverHandler.Download)
	// Route used by the original web form.
	covers.POST("/CoverPage/Download", coverHandler.Download)

	return router
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// cacheMiddleware keeps generated documents and API responses out of caches.
func cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/CoverPage") {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		}
		c.Next()
	}
}
