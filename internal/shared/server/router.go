package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/cases"
	"justicehub-backend/internal/documents"
	"justicehub-backend/internal/shared/auth"
	"justicehub-backend/internal/shared/config"
	"justicehub-backend/internal/shared/metrics"
	"justicehub-backend/internal/shared/server/middleware"
	"justicehub-backend/internal/shared/server/respond"
	"justicehub-backend/internal/users"
)

// RouterDeps carries the wired handlers and cross-cutting dependencies the
// router needs. Bootstrap builds one of these from config.
type RouterDeps struct {
	Config          config.Config
	JWT             *auth.JWTManager
	UserHandler     *users.Handler
	CaseHandler     *cases.Handler
	DocumentHandler *documents.Handler
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Limiter != nil {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Max:     deps.Config.RateLimitMax,
			Window:  deps.Config.RateLimitWindow,
			Limiter: deps.Limiter,
		}))
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	authGroup := api.Group("/auth")
	deps.UserHandler.RegisterPublicRoutes(authGroup)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(deps.JWT))

	protectedAuth := protected.Group("/auth")
	deps.UserHandler.RegisterProtectedRoutes(protectedAuth)
	deps.CaseHandler.RegisterRoutes(protected)
	deps.DocumentHandler.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
