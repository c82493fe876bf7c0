package services

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/dto"
)

// SafeAuthorizerSvc answers capability checks for safe-scoped operations.
// Administrators pass every check without a permission row.
type SafeAuthorizerSvc interface {
	// AuthorizeSafeAction returns nil when the user holds the capability on
	// the safe, apperrors.ErrForbidden otherwise.
	AuthorizeSafeAction(ctx context.Context, userID string, safeID string, capability domain.SafeCapability) error

	// AccessibleSafeIDs lists the IDs of every safe the user can read.
	// Administrators see all safes.
	AccessibleSafeIDs(ctx context.Context, userID string) ([]string, error)
}

// PermissionManagerSvc defines grant management operations. Callers need
// the manage capability on the target safe.
type PermissionManagerSvc interface {
	// UpsertPermission creates or replaces a user's capability flags on a
	// safe.
	UpsertPermission(ctx context.Context, requestingUserID string, targetUserID string, safeID string, req dto.UpsertPermissionRequest) (*domain.SafePermission, error)

	// RemovePermission revokes a user's access to a safe.
	RemovePermission(ctx context.Context, requestingUserID string, targetUserID string, safeID string) error

	// ListUserPermissions retrieves the target user's grants. Users may list
	// their own; administrators may list anyone's.
	ListUserPermissions(ctx context.Context, requestingUserID string, targetUserID string) ([]domain.SafePermission, error)
}

// PermissionSvcFacade combines all permission-related service interfaces
type PermissionSvcFacade interface {
	SafeAuthorizerSvc
	PermissionManagerSvc
}
