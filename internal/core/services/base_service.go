package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/events"
	"github.com/SscSPs/finance_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events events.Publisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// PublishEvent publishes a committed change. Failures are logged and never
// surface to the caller since the write has already succeeded.
func (s *BaseService) PublishEvent(ctx context.Context, event events.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish ledger event",
			slog.String("type", string(event.Type)),
			slog.String("tenant_id", event.TenantID),
			slog.String("error", err.Error()))
	}
}

// actorFromCtx returns the authenticated user for events on operations that do not take one.
func actorFromCtx(ctx context.Context) string {
	userID, _ := middleware.GetUserIDFromCtx(ctx)
	return userID
}
