package repositories

import (
	"context"
	"time"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// UserReaderRepository defines read operations for user data.
type UserReaderRepository interface {
	// FindUserByID retrieves a non-deleted user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a non-deleted user by email (login).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves non-deleted users, newest first.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// CountUsers returns the number of users ever created, deleted
	// included. Used by the first-run setup gate.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriterRepository defines write operations for user data.
type UserWriterRepository interface {
	// SaveUser persists a new user. Duplicate email -> ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserRole changes a user's application-wide role.
	UpdateUserRole(ctx context.Context, userID string, role domain.UserRole, updatedBy string, at time.Time) error

	// UpdateUserPassword replaces a user's password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, at time.Time) error

	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, at time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReaderRepository
	UserWriterRepository
}
