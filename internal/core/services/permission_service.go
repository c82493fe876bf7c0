package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// permissionService answers capability checks and manages permission rows.
type permissionService struct {
	permissionRepo portsrepo.PermissionRepositoryFacade
	safeRepo       portsrepo.SafeReaderRepository
	userRepo       portsrepo.UserReaderRepository
}

// NewPermissionService creates a new PermissionService.
func NewPermissionService(permissionRepo portsrepo.PermissionRepositoryFacade, safeRepo portsrepo.SafeReaderRepository, userRepo portsrepo.UserReaderRepository) portssvc.PermissionSvcFacade {
	return &permissionService{
		permissionRepo: permissionRepo,
		safeRepo:       safeRepo,
		userRepo:       userRepo,
	}
}

var _ portssvc.PermissionSvcFacade = (*permissionService)(nil)

// AuthorizeSafeAction checks whether the user holds the capability on the
// safe. Administrators pass without a permission row.
func (s *permissionService) AuthorizeSafeAction(ctx context.Context, userID string, safeID string, capability domain.SafeCapability) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		logger.Error("Failed to load user for authorization", "error", err, "user_id", userID)
		return fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user.IsAdmin() {
		return nil
	}

	perm, err := s.permissionRepo.FindPermission(ctx, userID, safeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No permission row for safe action", "user_id", userID, "safe_id", safeID, "capability", string(capability))
			return apperrors.ErrForbidden
		}
		logger.Error("Failed to load permission for authorization", "error", err, "user_id", userID, "safe_id", safeID)
		return fmt.Errorf("failed to load permission: %w", err)
	}
	if !perm.Allows(capability) {
		logger.Warn("Capability denied on safe", "user_id", userID, "safe_id", safeID, "capability", string(capability))
		return apperrors.ErrForbidden
	}
	return nil
}

// AccessibleSafeIDs lists the safes the user can read. Administrators see
// every safe.
func (s *permissionService) AccessibleSafeIDs(ctx context.Context, userID string) ([]string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user.IsAdmin() {
		return s.safeRepo.ListAllSafeIDs(ctx)
	}
	return s.permissionRepo.ListReadableSafeIDs(ctx, userID)
}

// UpsertPermission creates or replaces the target user's capability flags
// on the safe. The caller needs the manage capability.
func (s *permissionService) UpsertPermission(ctx context.Context, requestingUserID string, targetUserID string, safeID string, req dto.UpsertPermissionRequest) (*domain.SafePermission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeSafeAction(ctx, requestingUserID, safeID, domain.CapabilityManage); err != nil {
		return nil, err
	}
	if _, err := s.safeRepo.FindSafeByID(ctx, safeID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	// Keep rows internally consistent: manage implies write, write implies read.
	canManage := req.CanManage
	canWrite := req.CanWrite || canManage
	canRead := req.CanRead || canWrite

	now := time.Now().UTC()
	perm := domain.SafePermission{
		UserID:        targetUserID,
		SafeID:        safeID,
		CanRead:       canRead,
		CanWrite:      canWrite,
		CanManage:     canManage,
		CreatedAt:     now,
		CreatedBy:     requestingUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: requestingUserID,
	}
	if err := s.permissionRepo.UpsertPermission(ctx, perm); err != nil {
		logger.Error("Failed to upsert permission", "error", err, "safe_id", safeID, "target_user_id", targetUserID)
		return nil, fmt.Errorf("failed to upsert permission: %w", err)
	}

	logger.Info("Permission upserted", "safe_id", safeID, "target_user_id", targetUserID, "can_read", canRead, "can_write", canWrite, "can_manage", canManage)
	return &perm, nil
}

// RemovePermission revokes the target user's access to the safe.
func (s *permissionService) RemovePermission(ctx context.Context, requestingUserID string, targetUserID string, safeID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeSafeAction(ctx, requestingUserID, safeID, domain.CapabilityManage); err != nil {
		return err
	}
	if err := s.permissionRepo.DeletePermission(ctx, targetUserID, safeID); err != nil {
		logger.Error("Failed to delete permission", "error", err, "safe_id", safeID, "target_user_id", targetUserID)
		return fmt.Errorf("failed to delete permission: %w", err)
	}

	logger.Info("Permission removed", "safe_id", safeID, "target_user_id", targetUserID)
	return nil
}

// ListUserPermissions retrieves the target user's grants. Non-admins may
// only list their own.
func (s *permissionService) ListUserPermissions(ctx context.Context, requestingUserID string, targetUserID string) ([]domain.SafePermission, error) {
	if requestingUserID != targetUserID {
		requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user %s: %w", requestingUserID, err)
		}
		if !requester.IsAdmin() {
			return nil, apperrors.ErrForbidden
		}
	}
	return s.permissionRepo.ListPermissionsByUser(ctx, targetUserID)
}
