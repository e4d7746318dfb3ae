package repositories

import (
	"context"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by numeric id.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByName retrieves a user by unique name.
	FindUserByName(ctx context.Context, name string) (*domain.User, error)

	// ListUsers returns all users ordered by name.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// UpdateAccessCode replaces the stored access-code hash.
	UpdateAccessCode(ctx context.Context, userID int64, accessCodeHash string) error

	// DeleteUser removes the user row only; ledger history is left untouched.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserTransactionSupport defines user operations inside a caller-owned transaction.
type UserTransactionSupport interface {
	// SaveUserInTx inserts a user. Returns ErrDuplicate when the name is taken.
	SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) (*domain.User, error)

	FindUserByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTransactionSupport
}

// UserRepositoryWithTx extends UserRepositoryFacade with transaction capabilities
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	TransactionManager
}
