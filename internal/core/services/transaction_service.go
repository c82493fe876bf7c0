package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// transactionService provides the ledger write path and transaction
// listing.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	safeRepo        portsrepo.SafeReaderRepository
	authorizer      portssvc.SafeAuthorizerSvc
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, safeRepo portsrepo.SafeReaderRepository, authorizer portssvc.SafeAuthorizerSvc) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		safeRepo:        safeRepo,
		authorizer:      authorizer,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and appends a transaction to the safe's
// ledger. The repository applies the transaction to the inventory row in
// the same database transaction, so a removal exceeding the current count
// fails with ErrInsufficientQuantity and persists nothing.
func (s *transactionService) CreateTransaction(ctx context.Context, safeID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, *domain.Inventory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeSafeAction(ctx, creatorUserID, safeID, domain.CapabilityWrite); err != nil {
		return nil, nil, err
	}
	if _, err := s.safeRepo.FindSafeByID(ctx, safeID); err != nil {
		return nil, nil, err
	}

	kind := domain.TransactionKind(req.Kind)
	mode := domain.TransactionMode(req.Mode)
	if kind == domain.KindInventory && mode != domain.ModeReplace {
		return nil, nil, apperrors.NewValidationFailedError("inventory transactions must use REPLACE mode", nil)
	}

	bills, err := dto.ToBillCountMap(req.Bills)
	if err != nil {
		return nil, nil, apperrors.NewValidationFailedError("invalid bill payload", err)
	}
	if len(bills.Normalized()) == 0 && mode != domain.ModeReplace {
		return nil, nil, apperrors.NewValidationFailedError("transaction must move at least one bill", nil)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		SafeID:        safeID,
		Kind:          kind,
		Mode:          mode,
		Bills:         bills,
		Amount:        bills.Total(),
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	inventory, err := s.transactionRepo.SaveTransactionAndInventory(ctx, txn)
	if err != nil {
		logger.Error("Failed to save transaction", "error", err, "safe_id", safeID, "kind", req.Kind, "mode", req.Mode)
		return nil, nil, err
	}

	logger.Info("Transaction created", "transaction_id", txn.TransactionID, "safe_id", safeID, "kind", req.Kind, "mode", req.Mode, "amount", txn.Amount.String())
	return &txn, inventory, nil
}

// ListTransactions retrieves one page of the safe's transactions, newest
// first.
func (s *transactionService) ListTransactions(ctx context.Context, safeID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeSafeAction(ctx, requestingUserID, safeID, domain.CapabilityRead); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	txns, nextToken, err := s.transactionRepo.ListTransactionsBySafe(ctx, safeID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", "error", err, "safe_id", safeID)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
