package services

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves users, admin only.
	ListUsers(ctx context.Context, requestingUserID string, params dto.ListUsersParams) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser persists a new user, admin only.
	CreateUser(ctx context.Context, requestingUserID string, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUserRole changes a user's role. Admins cannot change their own.
	UpdateUserRole(ctx context.Context, requestingUserID string, targetUserID string, role domain.UserRole) (*domain.User, error)

	// ResetPassword replaces a user's password, admin only.
	ResetPassword(ctx context.Context, requestingUserID string, targetUserID string, req dto.ResetPasswordRequest) error

	// DeleteUser soft-deletes a user. Admins cannot delete themselves.
	DeleteUser(ctx context.Context, requestingUserID string, targetUserID string) error
}

// UserAuthenticatorSvc verifies credentials for the login endpoint.
type UserAuthenticatorSvc interface {
	// AuthenticateUser checks email and password and returns the user on
	// success, apperrors.ErrUnauthorized otherwise.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticatorSvc
}

// SetupSvcFacade handles the one-time first-run bootstrap.
type SetupSvcFacade interface {
	// SetupRequired reports whether no user exists yet.
	SetupRequired(ctx context.Context) (bool, error)

	// SetupFirstAdmin creates the first administrator and the first safe.
	// It fails with apperrors.ErrConflict once any user exists.
	SetupFirstAdmin(ctx context.Context, req dto.SetupRequest) (*domain.User, *domain.Safe, error)
}
