// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/stylematch/go-wardrobe-backend/internal/ai"
	"github.com/stylematch/go-wardrobe-backend/internal/config"
	"github.com/stylematch/go-wardrobe-backend/internal/domain"
	"github.com/stylematch/go-wardrobe-backend/internal/http/handlers"
	"github.com/stylematch/go-wardrobe-backend/internal/http/middleware"
	"github.com/stylematch/go-wardrobe-backend/internal/repo"
	"github.com/stylematch/go-wardrobe-backend/internal/services"
)

// clothingRepoShim adapts the repository free functions to the
// services.ClothingRepo interface. This keeps services decoupled from the
// concrete repo package while reusing existing functions.
type clothingRepoShim struct{}

func (clothingRepoShim) CreateClothingItem(ctx context.Context, db *gorm.DB, imageBase64, category, color, style, description string) (*domain.ClothingItem, error) {
	return repo.CreateClothingItem(ctx, db, imageBase64, category, color, style, description)
}

func (clothingRepoShim) ListClothingItems(ctx context.Context, db *gorm.DB) ([]domain.ClothingItem, error) {
	return repo.ListClothingItems(ctx, db)
}

func (clothingRepoShim) ListClothingItemsByIDs(ctx context.Context, db *gorm.DB, ids []string) ([]domain.ClothingItem, error) {
	return repo.ListClothingItemsByIDs(ctx, db, ids)
}

func (clothingRepoShim) DeleteClothingItem(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteClothingItem(ctx, db, id)
}

// outfitRepoShim adapts the saved-outfit repository free functions to the
// services.OutfitRepo interface.
type outfitRepoShim struct{}

func (outfitRepoShim) CreateSavedOutfit(ctx context.Context, db *gorm.DB, name, occasion string, clothingIDs []string, aiSuggestion string) (*domain.SavedOutfit, error) {
	return repo.CreateSavedOutfit(ctx, db, name, occasion, clothingIDs, aiSuggestion)
}

func (outfitRepoShim) ListSavedOutfits(ctx context.Context, db *gorm.DB) ([]domain.SavedOutfit, error) {
	return repo.ListSavedOutfits(ctx, db)
}

func (outfitRepoShim) DeleteSavedOutfit(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteSavedOutfit(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: observability (tracing, metrics), rate limiting, CORS and security
// headers, health and metrics endpoints, and the public API under the
// configured base path.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter (uploads are base64 images)
//  6. Gzip compression (item listings repeat the base64 payloads)
//  7. Metrics
//  8. Rate limiter (per IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, aiClient ai.Client, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(cfg.MaxBodyBytes))

	// 6) Compress responses; base64 text compresses well
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist.
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.CodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.CodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db/AI provider
	closetSvc := services.NewClosetService(db, clothingRepoShim{}, aiClient)
	outfitSvc := services.NewOutfitService(db, outfitRepoShim{}, clothingRepoShim{}, aiClient)

	closetH := handlers.NewClosetHandler(closetSvc)
	outfitH := handlers.NewOutfitHandler(outfitSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api"
	{
		api.GET("", closetH.Root)

		// Clothing items
		api.POST("/clothes", closetH.CreateClothing)
		api.GET("/clothes", closetH.ListClothes)
		api.DELETE("/clothes/:id", closetH.DeleteClothing)

		// Outfits
		api.POST("/outfits/generate", outfitH.GenerateOutfit)
		api.POST("/outfits/save", outfitH.SaveOutfit)
		api.GET("/outfits/saved", outfitH.ListSavedOutfits)
		api.DELETE("/outfits/:id", outfitH.DeleteOutfit)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
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
