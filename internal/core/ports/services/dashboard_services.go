package services

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// DashboardSvcFacade defines the aggregated read model over every safe a
// user can access.
type DashboardSvcFacade interface {
	// GetDashboard replays the ledgers of the safes the user can read and
	// merges them into one view. When safeID is set the view is restricted
	// to that safe.
	GetDashboard(ctx context.Context, requestingUserID string, safeID *string) (*domain.Dashboard, error)
}
