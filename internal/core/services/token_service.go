package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/platform/config"
	"github.com/SscSPs/cashclaim/internal/utils"
)

// tokenService issues and verifies the bearer tokens that identify a principal.
type tokenService struct {
	cfg      *config.Config
	users    portssvc.UserAuthSvc
	userRepo portsrepo.UserReader
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, users portssvc.UserAuthSvc, userRepo portsrepo.UserReader) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		users:    users,
		userRepo: userRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiryTime := now.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.Name, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, now)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// ParseAccessToken verifies the token and that its user still exists.
func (s *tokenService) ParseAccessToken(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", apperrors.ErrUnauthenticated)
	}

	// Tokens of deleted users stop working immediately.
	if _, err := s.userRepo.FindUserByName(ctx, claims.Subject); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", apperrors.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to look up token subject: %w", err)
	}

	principal := s.users.PrincipalFor(claims.Subject)
	return &principal, nil
}
