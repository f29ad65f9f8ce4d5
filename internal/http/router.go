// Package httpapi wires the HTTP transport (Gin) to the catalog service, the
// view-session registry, middleware, and route handlers. Cross-cutting
// concerns live here: tracing, correlation IDs, logging with redaction, panic
// recovery, compression, metrics, rate limiting, CORS, security headers and
// the admin guard.
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/go-soft-portal/docs"
	"github.com/tbourn/go-soft-portal/internal/config"
	"github.com/tbourn/go-soft-portal/internal/http/handlers"
	"github.com/tbourn/go-soft-portal/internal/http/middleware"
	"github.com/tbourn/go-soft-portal/internal/view"
)

// jsonBodyLimit caps every non-multipart request body.
const jsonBodyLimit = 1 << 20

var (
	allowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	allowHeaders = []string{
		"Origin", "Content-Type", "Accept",
		middleware.SessionHeader, middleware.AdminTokenHeader, "X-Request-ID",
	}
	exposeHeaders = []string{"X-Request-ID", "Content-Length"}
)

// RegisterRoutes attaches all middleware and endpoints to r.
//
// Middleware order:
//  1. OpenTelemetry
//  2. RequestID
//  3. Logger (masks X-Admin-Token)
//  4. Recovery
//  5. Body size limit (multipart uploads get a larger cap)
//  6. gzip
//  7. Metrics and /metrics
//  8. Rate limiter (per client IP)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, svc handlers.CatalogService, views *view.Registry, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(middleware.LogOptions{
		MaskHeaders: []string{middleware.AdminTokenHeader},
	}))
	r.Use(middleware.Recovery())

	h := handlers.New(svc, views)
	r.Use(limitBody(jsonBodyLimit, uploadLimit(cfg.MaxUploadBytes, h.MaxMediaFiles)))

	// Screenshots are already compressed images inside base64; text JSON is
	// what benefits.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
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

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.GET("/software", h.ListSoftware)
		api.GET("/software/:id", h.GetSoftware)
		api.GET("/software/:id/related", h.RelatedSoftware)
		api.POST("/software/:id/reviews", h.AddReview)
		api.POST("/software/:id/downloads", h.RecordDownload)
		api.GET("/taxonomies", h.Taxonomies)

		api.GET("/view", h.GetView)
		api.POST("/view/select", h.SelectSoftware)
		api.POST("/view/back", h.Back)
		api.POST("/view/admin", h.ToggleAdmin)
		api.PUT("/view/subview", h.SetSubview)
		api.PUT("/view/filter", h.SetFilter)
	}

	admin := api.Group("/admin",
		middleware.AdminToken(cfg.AdminToken),
		middleware.SecurityHeaders(middleware.SecurityOptions{NoStore: true}),
	)
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.PUT("/software", h.SaveSoftware)
		admin.DELETE("/software/:id", h.DeleteSoftware)
		admin.POST("/software/:id/media", h.UploadMedia)
		admin.POST("/categories", h.AddCategory)
		admin.DELETE("/categories/:name", h.DeleteCategory)
		admin.POST("/authors", h.AddAuthor)
		admin.POST("/reset", h.Reset)
	}
}

// corsMiddleware returns the CORS chain. With no configured origins every
// origin is allowed (and ACAO: * is forced even without an Origin header);
// otherwise allow-listed origins are echoed back.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	if len(origins) == 0 {
		return []gin.HandlerFunc{
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(cors.Config{
				AllowAllOrigins:  true,
				AllowMethods:     allowMethods,
				AllowHeaders:     allowHeaders,
				ExposeHeaders:    exposeHeaders,
				AllowCredentials: false, // must stay false with AllowAllOrigins
				MaxAge:           12 * time.Hour,
			}),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
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
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     allowMethods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	}
}

// uploadLimit is the multipart cap: every allowed file at its maximum size
// plus room for the form framing.
func uploadLimit(perFile int64, files int) int64 {
	if perFile <= 0 || files <= 0 {
		return jsonBodyLimit
	}
	return perFile*int64(files) + jsonBodyLimit
}

// limitBody caps request bodies with http.MaxBytesReader; multipart requests
// get uploadMax, everything else jsonMax. Reads past the cap fail downstream.
func limitBody(jsonMax, uploadMax int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		max := jsonMax
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			max = uploadMax
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
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
