package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/core/ledger"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	"github.com/cashvault/cashvault_backend/internal/models"
	"github.com/cashvault/cashvault_backend/internal/utils/mapping"
	"github.com/cashvault/cashvault_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, safe_id, kind, mode, bill_details, amount, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.SafeID,
		&m.Kind,
		&m.Mode,
		&m.BillDetails,
		&m.Amount,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransactionAndInventory appends the transaction and moves the safe's
// inventory row by one step within a single database transaction. The
// inventory row is locked with FOR UPDATE, so concurrent writers on the
// same safe serialize and each one applies against the state its
// predecessor left behind. A REMOVE exceeding the current count fails
// before anything is written.
func (r *PgxTransactionRepository) SaveTransactionAndInventory(ctx context.Context, txn domain.Transaction) (*domain.Inventory, error) {
	modelTxn, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// 1. Lock the inventory row for the duration of the transaction.
	var current models.Inventory
	err = tx.QueryRow(ctx, `
		SELECT safe_id, bill_details, total_amount, last_updated_at, last_updated_by
		FROM inventories
		WHERE safe_id = $1
		FOR UPDATE;
	`, txn.SafeID).Scan(
		&current.SafeID,
		&current.BillDetails,
		&current.TotalAmount,
		&current.LastUpdatedAt,
		&current.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock inventory for safe %s: %w", txn.SafeID, err)
	}

	currentBills, err := mapping.UnmarshalBills(current.BillDetails)
	if err != nil {
		return nil, err
	}

	// 2. Apply the single-step mutation, rejecting over-removal outright.
	nextBills, err := ledger.ApplyStrict(currentBills, txn)
	if err != nil {
		return nil, err
	}

	// 3. Insert the ledger row.
	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		modelTxn.TransactionID,
		modelTxn.SafeID,
		modelTxn.Kind,
		modelTxn.Mode,
		modelTxn.BillDetails,
		modelTxn.Amount,
		modelTxn.Notes,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}

	// 4. Write the moved inventory back.
	nextDetails, err := mapping.MarshalBills(nextBills)
	if err != nil {
		return nil, err
	}
	nextTotal := nextBills.Total()
	_, err = tx.Exec(ctx, `
		UPDATE inventories
		SET bill_details = $2, total_amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE safe_id = $1;
	`, txn.SafeID, nextDetails, nextTotal, txn.CreatedAt, txn.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory for safe %s: %w", txn.SafeID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.Inventory{
		SafeID:        txn.SafeID,
		Bills:         nextBills,
		TotalAmount:   nextTotal,
		LastUpdatedAt: txn.CreatedAt,
		LastUpdatedBy: txn.CreatedBy,
	}, nil
}

// FindTransactionsBySafeIDs fetches every transaction of the given safes in
// replay order: creation time ascending, insertion order breaking ties.
func (r *PgxTransactionRepository) FindTransactionsBySafeIDs(ctx context.Context, safeIDs []string) ([]domain.Transaction, error) {
	if len(safeIDs) == 0 {
		return []domain.Transaction{}, nil
	}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE safe_id = ANY($1)
		ORDER BY created_at ASC, transaction_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, safeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactions(ms)
}

// ListTransactionsBySafe retrieves one page of a safe's transactions,
// newest first, resuming strictly after the cursor row.
func (r *PgxTransactionRepository) ListTransactionsBySafe(ctx context.Context, safeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []interface{}{safeID, limit + 1}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE safe_id = $1
	`
	if nextToken != nil {
		createdAt, transactionID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid pagination token", err)
		}
		query += ` AND (created_at, transaction_id) < ($3, $4)`
		args = append(args, createdAt, transactionID)
	}
	query += ` ORDER BY created_at DESC, transaction_id DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for safe %s: %w", safeID, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}

	// One extra row was requested to learn whether another page exists.
	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		token = &t
	}

	txns, err := mapping.ToDomainTransactions(ms)
	if err != nil {
		return nil, nil, err
	}
	return txns, token, nil
}
