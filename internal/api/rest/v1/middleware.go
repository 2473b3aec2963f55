package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
)

// HeaderRequestID carries the correlation id of a request
const HeaderRequestID = "X-Request-Id"

// RequestID reuses an incoming X-Request-Id or assigns a new one, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(HeaderRequestID, requestID)
		ctx.Header(HeaderRequestID, requestID)
		ctx.Next()
	}
}

// ForwardAuth blocks requests whose client address is banned with 403 and lets the rest through.
// Blocks are logged at warning level; allowed requests only at debug level.
func ForwardAuth(banCheckService bans.BanCheckService, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clientIP := ClientIP(ctx.Request)
		path := requestedPath(ctx.Request)

		requestLog := log.With("request_id", ctx.GetString(HeaderRequestID))

		if banCheckService.IsBanned(ctx.Request.Context(), clientIP) {
			requestLog.Warn(fmt.Sprintf("BLOCKED: IP %s attempted to access %s [BANNED]", clientIP, path))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		requestLog.Debug(fmt.Sprintf("ALLOWED: IP %s accessed %s", clientIP, path))
		ctx.Next()
	}
}
