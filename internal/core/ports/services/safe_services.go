package services

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/dto"
)

// SafeReaderSvc defines read operations for safe data
type SafeReaderSvc interface {
	// GetSafeByID retrieves a safe the requesting user can read.
	GetSafeByID(ctx context.Context, safeID string, requestingUserID string) (*domain.Safe, error)

	// ListAccessibleSafes retrieves every safe the user can read, with
	// transaction counts.
	ListAccessibleSafes(ctx context.Context, requestingUserID string) ([]domain.SafeSummary, error)

	// GetInventory retrieves the current bill holdings of a safe.
	GetInventory(ctx context.Context, safeID string, requestingUserID string) (*domain.Inventory, error)

	// BuildInventoryExport assembles the printable snapshot of a safe's
	// holdings.
	BuildInventoryExport(ctx context.Context, safeID string, requestingUserID string) (*dto.InventoryExport, error)
}

// SafeWriterSvc defines write operations for safe data
type SafeWriterSvc interface {
	// CreateSafe persists a new safe with an empty inventory and grants the
	// creator full capabilities on it.
	CreateSafe(ctx context.Context, req dto.CreateSafeRequest, creatorUserID string) (*domain.Safe, error)
}

// SafeSvcFacade combines all safe-related service interfaces
type SafeSvcFacade interface {
	SafeReaderSvc
	SafeWriterSvc
}
