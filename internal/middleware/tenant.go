package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
)

// TenantMiddleware resolves the authenticated request into a domain.Caller:
// the user's global role and the session's active organization. It must run
// after AuthMiddleware. A stale or revoked session aborts with 401.
func TenantMiddleware(authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID missing from authenticated request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID, ok := GetSessionIDFromContext(c)
		if !ok {
			logger.Error("Session ID missing from authenticated request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		caller, err := authSvc.ResolveCaller(c.Request.Context(), userID, sessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Session rejected", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer valid"})
				return
			}
			logger.Error("Failed to resolve caller", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), callerKey, caller)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
