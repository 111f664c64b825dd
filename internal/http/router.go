// Package httpapi wires the HTTP transport (Gin) to the auction data
// gateway, middleware, and route handlers. It centralizes cross-cutting
// concerns such as tracing, correlation IDs, logging/redaction, panic
// recovery, metrics, rate limiting, compression, CORS and security headers.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/wow-auctions/docs"
	"github.com/tbourn/wow-auctions/internal/config"
	"github.com/tbourn/wow-auctions/internal/http/handlers"
	"github.com/tbourn/wow-auctions/internal/http/middleware"
	"github.com/tbourn/wow-auctions/internal/services"
)

// legacyBasePath is where the first version of the API exposed the realm
// listing and the item statistics.
const legacyBasePath = "/resources/wowauctions"

// healthTimeout bounds the database ping of /health.
const healthTimeout = 2 * time.Second

// defaultMaxBody applies when no body limit is configured.
const defaultMaxBody = 1 << 20

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the gateway API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: request-scoped logger and scrubbed access log
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP, or per RATE_KEY_HEADER value)
//  8. Gzip, CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	if err := r.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		log.Warn().Err(err).Strs("proxies", cfg.Security.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit; auction batches are the largest payloads
	r.Use(limitBody(cfg.MaxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics("/metrics", "/health"))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP or caller header
	keyFn := middleware.KeyByClientIP()
	if cfg.RateKeyHeader != "" {
		keyFn = middleware.KeyByHeaderOrIP(cfg.RateKeyHeader)
	}
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, keyFn)
	r.Use(rl.Handler())

	// 8) Compression, CORS and security headers
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:          cfg.Security.EnableHSTS,
		HSTSMaxAge:          cfg.Security.HSTSMaxAge,
		TrustForwardedProto: len(cfg.Security.TrustedProxies) > 0,
		NoStore:             false,
		EnablePolicy:        true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/readiness
	r.GET("/health", healthHandler(db))

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(services.NewGateway(db))

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Realms
		api.GET("/realms", h.ListRealms)
		api.POST("/realms", h.CreateRealm)
		api.GET("/realms/lookup", h.LookupRealm)
		api.GET("/realms/exists", h.RealmExists)
		api.GET("/realms/:id", h.GetRealm)
		api.PUT("/realms/:id", h.UpdateRealm)

		// Realm folders
		api.POST("/realms/:id/folders", h.CreateRealmFolder)
		api.GET("/realms/:id/folders/:type", h.GetRealmFolder)

		// Auction files
		api.GET("/realms/:id/auction-files/to-process", h.ListAuctionFilesToProcess)
		api.POST("/auction-files", h.CreateAuctionFile)
		api.GET("/auction-files/exists", h.AuctionFileExists)
		api.GET("/auction-files/:id", h.GetAuctionFile)
		api.PUT("/auction-files/:id", h.UpdateAuctionFile)

		// Auctions
		api.GET("/realms/:id/auctions", h.ListRealmAuctions)
		api.POST("/auction-files/:id/auctions", h.StoreAuctions)
		api.DELETE("/auction-files/:id/auctions", h.DeleteAuctionData)

		// Statistics
		api.GET("/items", h.ItemStatistics)
	}

	legacy := r.Group(legacyBasePath)
	{
		legacy.GET("/realms", h.ListRealms)
		legacy.GET("/items", h.ItemStatistics)
	}
}

// corsMiddleware returns the CORS chain. Without configured origins every
// origin is allowed (no credentials); otherwise only the allowlist is echoed.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		base.AllowAllOrigins = true
		// Force ACAO: * even for requests without an Origin header.
		return []gin.HandlerFunc{
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// healthHandler reports ok when the database answers a ping, 503 otherwise.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error. A non-positive maxBytes falls back
// to 1 MiB.
func limitBody(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBody
	}
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
