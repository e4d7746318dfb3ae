package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclaim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/SscSPs/cashclaim/internal/utils"
)

// userService handles enrolment, login and administrator user management.
type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryWithTx
	projectRepo portsrepo.ProjectRepositoryFacade
	adminName   string
	adminPIN    string
}

// NewUserService creates a new user service. adminName is the only user with admin rights.
func NewUserService(userRepo portsrepo.UserRepositoryWithTx, projectRepo portsrepo.ProjectRepositoryFacade, adminName, adminPIN string) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		adminName:   adminName,
		adminPIN:    adminPIN,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) PrincipalFor(userName string) domain.Principal {
	return domain.Principal{UserName: userName, IsAdmin: userName == s.adminName}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.AccessCode) == "" {
		return nil, fmt.Errorf("%w: access code is required", apperrors.ErrValidation)
	}
	return s.createUser(ctx, name, req.AccessCode)
}

// createUser inserts the user and its Main project in one transaction.
func (s *userService) createUser(ctx context.Context, name, accessCode string) (*domain.User, error) {
	hash, err := utils.HashAccessCode(accessCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash access code")
		return nil, fmt.Errorf("failed to hash access code: %w", err)
	}

	tx, err := s.userRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.userRepo.Rollback(ctx, tx) }()

	user, err := s.userRepo.SaveUserInTx(ctx, tx, domain.User{Name: name, AccessCodeHash: hash})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user %q already exists", apperrors.ErrDuplicate, name)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("name", name))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.projectRepo.EnsureProjectInTx(ctx, tx, name, domain.DefaultProjectName, domain.DefaultProjectDescription); err != nil {
		s.LogError(ctx, err, "Failed to create default project", slog.String("name", name))
		return nil, fmt.Errorf("failed to create default project: %w", err)
	}

	if err := s.userRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit user creation: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.UserID), slog.String("name", name))
	return user, nil
}

func (s *userService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.userRepo.FindUserByName(ctx, s.adminName)
	switch {
	case err == nil:
		// Older databases may predate the Main project.
		if _, err := s.projectRepo.EnsureProject(ctx, s.adminName, domain.DefaultProjectName, domain.DefaultProjectDescription); err != nil {
			return fmt.Errorf("failed to ensure admin project: %w", err)
		}
		return nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("failed to look up default admin: %w", err)
	}

	if _, err := s.createUser(ctx, s.adminName, s.adminPIN); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil // another instance won the race
		}
		return err
	}
	s.LogInfo(ctx, "Default admin created", slog.String("name", s.adminName))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, name, accessCode string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	user, err := s.userRepo.FindUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Login for unknown user", slog.String("name", name))
			return nil, fmt.Errorf("%w: invalid name or access code", apperrors.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckAccessCode(accessCode, user.AccessCodeHash) {
		s.GetLogger(ctx).Warn("Wrong access code", slog.String("name", name))
		return nil, fmt.Errorf("%w: invalid name or access code", apperrors.ErrUnauthenticated)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, principal domain.Principal) ([]domain.User, error) {
	if err := s.RequireAdmin(ctx, principal, "list users"); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, principal domain.Principal, userID int64) error {
	if err := s.RequireAdmin(ctx, principal, "delete user"); err != nil {
		return err
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Name == s.adminName {
		return fmt.Errorf("%w: the default administrator cannot be deleted", apperrors.ErrForbidden)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %d", apperrors.ErrNotFound, userID)
		}
		s.LogError(ctx, err, "Failed to delete user", slog.Int64("user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "User deleted", slog.Int64("user_id", userID), slog.String("name", user.Name))
	return nil
}

func (s *userService) UpdateAccessCode(ctx context.Context, principal domain.Principal, userID int64, accessCode string) error {
	if err := s.RequireAdmin(ctx, principal, "update access code"); err != nil {
		return err
	}
	if strings.TrimSpace(accessCode) == "" {
		return fmt.Errorf("%w: access code is required", apperrors.ErrValidation)
	}
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}

	hash, err := utils.HashAccessCode(accessCode)
	if err != nil {
		return fmt.Errorf("failed to hash access code: %w", err)
	}
	if err := s.userRepo.UpdateAccessCode(ctx, userID, hash); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %d", apperrors.ErrNotFound, userID)
		}
		s.LogError(ctx, err, "Failed to update access code", slog.Int64("user_id", userID))
		return fmt.Errorf("failed to update access code: %w", err)
	}
	s.LogInfo(ctx, "Access code updated", slog.Int64("user_id", userID))
	return nil
}

func (s *userService) findUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
