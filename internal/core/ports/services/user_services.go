package services

import (
	"context"
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// ListUsers lists every user. Admin only.
	ListUsers(ctx context.Context, principal domain.Principal) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register enrols a user and creates their Main project.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateAccessCode replaces a user's access code. Admin only.
	UpdateAccessCode(ctx context.Context, principal domain.Principal, userID int64, accessCode string) error

	// EnsureDefaultAdmin creates the configured administrator if it does not exist.
	EnsureDefaultAdmin(ctx context.Context) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a user account. Ledger history is kept.
	DeleteUser(ctx context.Context, principal domain.Principal, userID int64) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a name and access code.
	AuthenticateUser(ctx context.Context, name, accessCode string) (*domain.User, error)

	// PrincipalFor derives the principal for an authenticated user name.
	PrincipalFor(userName string) domain.Principal
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}

// ProjectSvcFacade manages sub-wallets.
type ProjectSvcFacade interface {
	// EnsureDefaultProject makes sure userName owns a Main project.
	EnsureDefaultProject(ctx context.Context, userName string) (*domain.Project, error)

	CreateProject(ctx context.Context, principal domain.Principal, req dto.CreateProjectRequest) (*domain.Project, error)

	// ListProjects returns userName's projects with fresh balances.
	ListProjects(ctx context.Context, principal domain.Principal, userName string) ([]domain.ProjectBalance, error)
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ParseAccessToken validates a bearer token and returns the principal it names.
	ParseAccessToken(ctx context.Context, token string) (*domain.Principal, error)
}
