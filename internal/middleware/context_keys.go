package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

const (
	// userIDKey stores the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")

	// sessionIDKey stores the session ID (JWT jti) in the request context.
	sessionIDKey = contextKey("sessionID")

	// callerKey stores the resolved domain.Caller in the request context.
	callerKey = contextKey("caller")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetSessionIDFromContext retrieves the session ID from the request context.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, ok := c.Request.Context().Value(sessionIDKey).(string)
	return sessionID, ok
}

// GetCallerFromContext retrieves the resolved caller (identity + tenant
// context) set by the tenant middleware.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	caller, ok := c.Request.Context().Value(callerKey).(domain.Caller)
	return caller, ok
}
