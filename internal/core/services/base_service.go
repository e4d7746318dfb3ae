package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdmin fails with ErrForbidden unless the principal is an administrator.
func (s *BaseService) RequireAdmin(ctx context.Context, principal domain.Principal, action string) error {
	if principal.IsAdmin {
		return nil
	}
	s.GetLogger(ctx).Warn("Admin-only action refused",
		slog.String("user", principal.UserName),
		slog.String("action", action))
	return fmt.Errorf("%w: %s requires an administrator", apperrors.ErrForbidden, action)
}

// RequireAccess fails with ErrForbidden unless the principal owns userName's data or is an admin.
func (s *BaseService) RequireAccess(ctx context.Context, principal domain.Principal, userName string) error {
	if principal.CanActFor(userName) {
		return nil
	}
	s.GetLogger(ctx).Warn("Access to another user's ledger refused",
		slog.String("user", principal.UserName),
		slog.String("target_user", userName))
	return fmt.Errorf("%w: %s may not access %s", apperrors.ErrForbidden, principal.UserName, userName)
}

// resolveUser picks the ledger owner for a request: the principal itself unless an
// admin named someone else. A non-admin naming another user is refused.
func (s *BaseService) resolveUser(ctx context.Context, principal domain.Principal, requested *string) (string, error) {
	if requested == nil {
		return principal.UserName, nil
	}
	name := strings.TrimSpace(*requested)
	if name == "" || name == principal.UserName {
		return principal.UserName, nil
	}
	if err := s.RequireAccess(ctx, principal, name); err != nil {
		return "", err
	}
	return name, nil
}

// optionalString returns nil for empty or blank strings.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
