// Package httpapi wires the HTTP transport (Gin) to the print and vote
// services, middleware, and route handlers. It centralizes cross-cutting
// concerns such as tracing, correlation IDs, logging/redaction, panic
// recovery, metrics, device identity, rate limiting, compression, CORS and
// security headers.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/sejm-prints-backend/docs"
	"github.com/tbourn/sejm-prints-backend/internal/config"
	"github.com/tbourn/sejm-prints-backend/internal/http/handlers"
	"github.com/tbourn/sejm-prints-backend/internal/http/middleware"
)

const (
	maxBodyBytes = 64 << 10

	// ipShareFactor scales the per-user rate into the per-address rate.
	ipShareFactor = 4
)

// Deps are the collaborators the routes are served by.
type Deps struct {
	Prints   handlers.PrintService
	Votes    handlers.VoteService
	Identity middleware.Resolver // nil disables X-Device-ID resolution
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with identity scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter per IP (health and scrapes exempt)
//  8. Identity: X-User-ID or a device-scoped anonymous id
//  9. Rate limiter per user, falling back to IP
//  10. Gzip, CORS and security headers
func RegisterRoutes(r *gin.Engine, deps Deps, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The IP limiter runs before Identity so that rotating X-Device-ID or
	// X-User-ID neither escapes limiting nor mints unbounded device rows.
	// Its budget covers several users sharing one address.
	ipLimiter := middleware.NewRateLimiter(cfg.RateRPS*ipShareFactor, cfg.RateBurst*ipShareFactor, middleware.KeyByIP(),
		middleware.WithSkipPaths("/health", "/metrics"),
	)
	r.Use(ipLimiter.Handler())

	r.Use(middleware.Identity(deps.Identity))

	userLimiter := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP(),
		middleware.WithSkipPaths("/health", "/metrics"),
	)
	r.Use(userLimiter.Handler())

	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(corsMiddleware(cfg.CORS)...)

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(deps.Prints, deps.Votes)
	api := groupWithPrefix(r, cfg.APIBasePath)

	prints := api.Group("/prints")
	{
		cached := prints.Group("", middleware.CacheControl(cfg.PrintsMaxAge))
		cached.GET("", h.ListPrints)
		cached.GET("/:number", h.GetPrint)

		votes := prints.Group("/:number/votes", middleware.CacheControl(0))
		votes.GET("", h.GetVotes)
		votes.POST("", middleware.RequireUser(), h.SubmitVote)
		votes.DELETE("", middleware.RequireUser(), h.RemoveVote)
	}

	batch := api.Group("/votes", middleware.CacheControl(0))
	{
		batch.GET("/stats", h.BatchStats)
		batch.GET("/mine", middleware.RequireUser(), h.MyVotes)
	}
}

// corsMiddleware returns the CORS chain. Without an allowlist every origin
// is accepted and ACAO is forced to "*" even for requests without Origin;
// with one, allowed origins are echoed.
func corsMiddleware(cfg config.CORSConfig) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			middleware.HeaderUserID, middleware.HeaderDeviceID,
		},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 {
		base.AllowAllOrigins = true
		return []gin.HandlerFunc{
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = cfg.AllowedOrigins
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

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; oversized bodies make downstream reads fail.
func limitBody(maxBytes int64) gin.HandlerFunc {
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
