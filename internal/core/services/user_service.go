package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
	"github.com/cashvault/cashvault_backend/internal/utils"
)

// userService provides user management and credential verification.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// requireAdmin loads the requesting user and rejects non-admins.
func (s *userService) requireAdmin(ctx context.Context, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", requestingUserID, err)
	}
	if !user.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves users, admin only.
func (s *userService) ListUsers(ctx context.Context, requestingUserID string, params dto.ListUsersParams) ([]domain.User, error) {
	if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}

// CreateUser persists a new user, admin only.
func (s *userService) CreateUser(ctx context.Context, requestingUserID string, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         domain.UserRole(req.Role),
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("user with email %s already exists", req.Email))
		}
		logger.Error("Failed to save user", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User created", "created_user_id", user.UserID, "role", req.Role)
	return &user, nil
}

// UpdateUserRole changes a user's role, admin only. An admin cannot change
// their own role, so the instance always keeps at least one admin.
func (s *userService) UpdateUserRole(ctx context.Context, requestingUserID string, targetUserID string, role domain.UserRole) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}
	if requestingUserID == targetUserID {
		return nil, apperrors.NewValidationFailedError("cannot change own role", nil)
	}
	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateUserRole(ctx, targetUserID, role, requestingUserID, now); err != nil {
		logger.Error("Failed to update user role", "error", err, "target_user_id", targetUserID)
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	target.Role = role
	target.LastUpdatedAt = now
	target.LastUpdatedBy = requestingUserID
	logger.Info("User role updated", "target_user_id", targetUserID, "role", string(role))
	return target, nil
}

// ResetPassword replaces a user's password, admin only.
func (s *userService) ResetPassword(ctx context.Context, requestingUserID string, targetUserID string, req dto.ResetPasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdateUserPassword(ctx, targetUserID, hash, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to update password", "error", err, "target_user_id", targetUserID)
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset", "target_user_id", targetUserID)
	return nil
}

// DeleteUser soft-deletes a user, admin only. Admins cannot delete
// themselves.
func (s *userService) DeleteUser(ctx context.Context, requestingUserID string, targetUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return err
	}
	if requestingUserID == targetUserID {
		return apperrors.NewValidationFailedError("cannot delete own account", nil)
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, targetUserID, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to delete user", "error", err, "target_user_id", targetUserID)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.Info("User deleted", "target_user_id", targetUserID)
	return nil
}

// AuthenticateUser verifies the email and password pair. Failures are
// indistinguishable to the caller so the endpoint cannot be used to probe
// for accounts.
func (s *userService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to load user for login", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login failed", "login_user_id", user.UserID)
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
