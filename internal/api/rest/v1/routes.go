package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
)

// HealthPath is the route of the health endpoint
const HealthPath = "/health"

// SetupRoutes registers the middleware chain and routes.
// ForwardAuth runs for every request, the health endpoint included.
func SetupRoutes(r *gin.Engine, banCheckService bans.BanCheckService, log logger.Logger) {
	// Redirects are answered before middleware runs, so /health/ would bypass ForwardAuth.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(RequestID(), ForwardAuth(banCheckService, log))

	healthHandler := NewHealthHandler(banCheckService)
	r.Any(HealthPath, healthHandler.Check)

	// Traefik may forward auth requests for any method and path.
	r.NoRoute(Allow)
}
