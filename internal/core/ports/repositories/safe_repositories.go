package repositories

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// SafeReaderRepository defines read operations for safes and their
// materialized inventories.
type SafeReaderRepository interface {
	// FindSafeByID retrieves a safe by its ID.
	FindSafeByID(ctx context.Context, safeID string) (*domain.Safe, error)

	// ListSafesByIDs retrieves the given safes with their ledger sizes,
	// ordered by creation time descending.
	ListSafesByIDs(ctx context.Context, safeIDs []string) ([]domain.SafeSummary, error)

	// ListAllSafeIDs returns the IDs of every active safe (ADMIN view).
	ListAllSafeIDs(ctx context.Context) ([]string, error)

	// FindInventoryBySafeID retrieves the materialized inventory of a safe.
	FindInventoryBySafeID(ctx context.Context, safeID string) (*domain.Inventory, error)
}

// SafeWriterRepository defines write operations for safes.
type SafeWriterRepository interface {
	// SaveSafeWithInventory persists a new safe together with its empty
	// inventory row, atomically.
	SaveSafeWithInventory(ctx context.Context, safe domain.Safe, inventory domain.Inventory) error
}

// SafeRepositoryFacade combines all safe repository interfaces.
type SafeRepositoryFacade interface {
	SafeReaderRepository
	SafeWriterRepository
}
