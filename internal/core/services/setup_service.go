package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
	"github.com/cashvault/cashvault_backend/internal/utils"
)

// setupService handles the one-time first-run bootstrap. It writes
// through the repositories directly because no authenticated user exists
// yet to satisfy the regular services' authorization checks.
type setupService struct {
	userRepo       portsrepo.UserRepositoryFacade
	safeRepo       portsrepo.SafeRepositoryFacade
	permissionRepo portsrepo.PermissionRepositoryFacade
}

// NewSetupService creates a new SetupService.
func NewSetupService(userRepo portsrepo.UserRepositoryFacade, safeRepo portsrepo.SafeRepositoryFacade, permissionRepo portsrepo.PermissionRepositoryFacade) portssvc.SetupSvcFacade {
	return &setupService{
		userRepo:       userRepo,
		safeRepo:       safeRepo,
		permissionRepo: permissionRepo,
	}
}

var _ portssvc.SetupSvcFacade = (*setupService)(nil)

// SetupRequired reports whether no user was ever created. Soft-deleted
// users count, so a wiped roster does not reopen the bootstrap.
func (s *setupService) SetupRequired(ctx context.Context) (bool, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count == 0, nil
}

// SetupFirstAdmin creates the first administrator and the first safe. The
// unique index on users.email backs the race: two concurrent bootstraps
// cannot both succeed.
func (s *setupService) SetupFirstAdmin(ctx context.Context, req dto.SetupRequest) (*domain.User, *domain.Safe, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	required, err := s.SetupRequired(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !required {
		return nil, nil, apperrors.NewConflictError("setup already completed")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password during setup", "error", err)
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	admin := domain.User{
		UserID:       userID,
		Email:        req.Email,
		Name:         req.Name,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, nil, apperrors.NewConflictError("setup already completed")
		}
		logger.Error("Failed to save first admin", "error", err)
		return nil, nil, fmt.Errorf("failed to save first admin: %w", err)
	}

	safe := domain.Safe{
		SafeID:      uuid.NewString(),
		Name:        req.SafeName,
		Description: req.SafeDescription,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	inventory := domain.Inventory{
		SafeID:        safe.SafeID,
		Bills:         domain.BillCountMap{},
		TotalAmount:   decimal.Zero,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := s.safeRepo.SaveSafeWithInventory(ctx, safe, inventory); err != nil {
		logger.Error("Failed to save first safe", "error", err)
		return nil, nil, fmt.Errorf("failed to save first safe: %w", err)
	}

	grant := domain.SafePermission{
		UserID:        userID,
		SafeID:        safe.SafeID,
		CanRead:       true,
		CanWrite:      true,
		CanManage:     true,
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := s.permissionRepo.UpsertPermission(ctx, grant); err != nil {
		logger.Error("Failed to grant permissions on first safe", "error", err)
		return nil, nil, fmt.Errorf("failed to grant permissions: %w", err)
	}

	logger.Info("First admin and safe created", "admin_user_id", userID, "safe_id", safe.SafeID)
	return &admin, &safe, nil
}
