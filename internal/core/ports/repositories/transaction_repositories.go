package repositories

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// TransactionReaderRepository defines read operations over the append-only
// transaction log.
type TransactionReaderRepository interface {
	// FindTransactionsBySafeIDs retrieves every transaction belonging to
	// the given safes, ordered ascending by creation time (insertion order
	// breaking ties). This is the aggregator's fetch.
	FindTransactionsBySafeIDs(ctx context.Context, safeIDs []string) ([]domain.Transaction, error)

	// ListTransactionsBySafe retrieves one safe's transactions newest
	// first, cursor-paginated. A nil nextToken starts from the top; the
	// returned token is nil when the listing is exhausted.
	ListTransactionsBySafe(ctx context.Context, safeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriterRepository defines the single write-path operation.
type TransactionWriterRepository interface {
	// SaveTransactionAndInventory appends the transaction and applies its
	// single-step mutation to the safe's inventory row within one database
	// transaction. The inventory row is locked for the duration, so
	// concurrent writers on the same safe are serialized. A REMOVE
	// exceeding the current count fails with ErrInsufficientQuantity and
	// persists nothing. Returns the inventory state after the write.
	SaveTransactionAndInventory(ctx context.Context, txn domain.Transaction) (*domain.Inventory, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReaderRepository
	TransactionWriterRepository
}
