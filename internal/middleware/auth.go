package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// TokenParser turns a bearer token into the principal it was issued to.
type TokenParser interface {
	ParseAccessToken(ctx context.Context, token string) (*domain.Principal, error)
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and stores the resulting principal on the request.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		principal, err := tokens.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("user", principal.UserName),
			slog.Bool("is_admin", principal.IsAdmin),
		)

		ctx := WithPrincipal(c.Request.Context(), *principal)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(principalKey), *principal)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}
