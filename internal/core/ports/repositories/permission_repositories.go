package repositories

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// PermissionRepositoryFacade defines storage operations for per-safe
// permission rows. Administrators have no rows; their bypass lives in the
// permission service.
type PermissionRepositoryFacade interface {
	// UpsertPermission creates or updates the (user, safe) permission row.
	UpsertPermission(ctx context.Context, permission domain.SafePermission) error

	// DeletePermission removes the (user, safe) permission row.
	DeletePermission(ctx context.Context, userID, safeID string) error

	// FindPermission retrieves the (user, safe) permission row.
	// Returns ErrNotFound when no explicit row exists.
	FindPermission(ctx context.Context, userID, safeID string) (*domain.SafePermission, error)

	// ListPermissionsByUser retrieves all permission rows of one user.
	ListPermissionsByUser(ctx context.Context, userID string) ([]domain.SafePermission, error)

	// ListReadableSafeIDs returns the IDs of safes the user holds an
	// explicit canRead permission on.
	ListReadableSafeIDs(ctx context.Context, userID string) ([]string, error)
}
