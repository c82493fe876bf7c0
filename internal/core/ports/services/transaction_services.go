package services

import (
	"context"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger transactions
type TransactionReaderSvc interface {
	// ListTransactions retrieves a paginated list of a safe's transactions,
	// newest first.
	ListTransactions(ctx context.Context, safeID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for ledger transactions
type TransactionWriterSvc interface {
	// CreateTransaction appends a transaction to a safe's ledger and returns
	// it together with the inventory it produced.
	CreateTransaction(ctx context.Context, safeID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, *domain.Inventory, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
