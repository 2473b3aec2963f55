package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
)

// HealthHandler defines the interface for the health endpoint
type HealthHandler interface {
	Check(ctx *gin.Context)
}

type healthHandler struct {
	banCheckService bans.BanCheckService
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(banCheckService bans.BanCheckService) HealthHandler {
	return &healthHandler{banCheckService: banCheckService}
}

// Check reports liveness together with the size of the current ban list
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 403 "client address is banned"
// @Router /health [get]
func (handler *healthHandler) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:        HealthStatusOK,
		BannedIPCount: handler.banCheckService.Count(),
	})
}

// Allow answers every request that made it past ForwardAuth with an empty 200
func Allow(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
	ctx.Writer.WriteHeaderNow()
}
