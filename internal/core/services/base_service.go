package services

import (
	"context"
	"log/slog"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/oficinadev/oficina_backend/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireOrganization returns the caller's active organization ID, or
// ErrForbidden when the session has no tenant context. Every
// organization-scoped operation starts here.
func (s *BaseService) RequireOrganization(caller domain.Caller) (string, error) {
	if caller.ActiveOrganizationID == nil || *caller.ActiveOrganizationID == "" {
		return "", apperrors.ErrForbidden
	}
	return *caller.ActiveOrganizationID, nil
}
