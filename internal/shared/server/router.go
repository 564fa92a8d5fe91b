package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"fedventura-backend/internal/auth"
	"fedventura-backend/internal/ideas"
	"fedventura-backend/internal/pages"
	"fedventura-backend/internal/profiles"
	"fedventura-backend/internal/questionnaire"
	"fedventura-backend/internal/resources"
	"fedventura-backend/internal/services/health"
	"fedventura-backend/internal/shared/config"
	"fedventura-backend/internal/shared/metrics"
	"fedventura-backend/internal/shared/server/middleware"
	"fedventura-backend/internal/shared/server/respond"
)

const generateGroup = "GENERATE"

// RouterDeps are the handlers mounted by NewRouter. Nil handlers are skipped.
type RouterDeps struct {
	Config        config.Config
	Verifier      middleware.TokenVerifier
	Health        *health.Service
	Auth          *auth.Handler
	OAuth         *auth.OAuthService
	Profiles      *profiles.Handler
	Questionnaire *questionnaire.Handler
	Ideas         *ideas.Handler
	Resources     *resources.Handler
	Pages         *pages.Handler
	Limiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		otelgin.Middleware(serviceName(cfg)),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(allowedOrigins(cfg)),
		middleware.Session(deps.Verifier),
		middleware.Gate(),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: generateRoutes,
			Limiter:  deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				generateGroup: middleware.PerMinute(cfg.RateLimitPerMinute, cfg.RateLimitBurst),
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	site := r.Group("/")
	if deps.Pages != nil {
		deps.Pages.RegisterRoutes(site)
	}
	if deps.OAuth != nil {
		deps.OAuth.RegisterRoutes(site)
	}

	api := r.Group("/api/v1")
	if deps.Health != nil {
		deps.Health.RegisterRoutes(api)
	}
	if deps.Auth != nil {
		deps.Auth.RegisterRoutes(api)
	}
	if deps.Resources != nil {
		deps.Resources.RegisterRoutes(api)
	}
	if deps.Ideas != nil {
		deps.Ideas.RegisterPublicRoutes(api)
	}

	protected := api.Group("", middleware.RequireUser())
	if deps.Profiles != nil {
		deps.Profiles.RegisterRoutes(protected)
	}
	if deps.Questionnaire != nil {
		deps.Questionnaire.RegisterRoutes(protected)
	}
	if deps.Ideas != nil {
		deps.Ideas.RegisterRoutes(protected)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
			return
		}
		c.String(http.StatusNotFound, "page not found")
	})

	return r
}

// generateRoutes selects the routes that invoke the model.
func generateRoutes(c *gin.Context) string {
	switch c.Request.Method + " " + c.FullPath() {
	case "POST /api/v1/questionnaire",
		"POST /api/v1/business-ideas/courses",
		"POST /profile",
		"GET /business-ideas":
		return generateGroup
	}
	return ""
}

func allowedOrigins(cfg config.Config) []string {
	origins := append([]string(nil), cfg.CORSAllowOrigin...)
	if cfg.PublicBaseURL != "" {
		origins = append(origins, cfg.PublicBaseURL)
	}
	return origins
}

func serviceName(cfg config.Config) string {
	if cfg.ServiceName == "" {
		return "fedventura"
	}
	return cfg.ServiceName
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
