package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	"github.com/cashvault/cashvault_backend/internal/models"
	"github.com/cashvault/cashvault_backend/internal/utils/mapping"
)

type PgxSafeRepository struct {
	BaseRepository
}

func newPgxSafeRepository(pool *pgxpool.Pool) portsrepo.SafeRepositoryFacade {
	return &PgxSafeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SafeRepositoryFacade = (*PgxSafeRepository)(nil)

func (r *PgxSafeRepository) FindSafeByID(ctx context.Context, safeID string) (*domain.Safe, error) {
	query := `
		SELECT safe_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM safes
		WHERE safe_id = $1;
	`
	var m models.Safe
	err := r.Pool.QueryRow(ctx, query, safeID).Scan(
		&m.SafeID,
		&m.Name,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find safe by ID %s: %w", safeID, err)
	}
	safe := mapping.ToDomainSafe(m)
	return &safe, nil
}

func (r *PgxSafeRepository) ListSafesByIDs(ctx context.Context, safeIDs []string) ([]domain.SafeSummary, error) {
	if len(safeIDs) == 0 {
		return []domain.SafeSummary{}, nil
	}
	query := `
		SELECT s.safe_id, s.name, s.description, s.is_active,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
		       COUNT(t.transaction_id) AS transaction_count
		FROM safes s
		LEFT JOIN transactions t ON t.safe_id = s.safe_id
		WHERE s.safe_id = ANY($1)
		GROUP BY s.safe_id
		ORDER BY s.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, safeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list safes: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.SafeSummary, 0, len(safeIDs))
	for rows.Next() {
		var m models.Safe
		var count int64
		if err := rows.Scan(
			&m.SafeID,
			&m.Name,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&count,
		); err != nil {
			return nil, fmt.Errorf("failed to scan safe row: %w", err)
		}
		summaries = append(summaries, domain.SafeSummary{
			Safe:             mapping.ToDomainSafe(m),
			TransactionCount: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating safe rows: %w", err)
	}
	return summaries, nil
}

func (r *PgxSafeRepository) ListAllSafeIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT safe_id FROM safes WHERE is_active ORDER BY created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list safe IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan safe ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating safe IDs: %w", err)
	}
	return ids, nil
}

func (r *PgxSafeRepository) FindInventoryBySafeID(ctx context.Context, safeID string) (*domain.Inventory, error) {
	query := `
		SELECT safe_id, bill_details, total_amount, last_updated_at, last_updated_by
		FROM inventories
		WHERE safe_id = $1;
	`
	var m models.Inventory
	err := r.Pool.QueryRow(ctx, query, safeID).Scan(
		&m.SafeID,
		&m.BillDetails,
		&m.TotalAmount,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory for safe %s: %w", safeID, err)
	}
	inventory, err := mapping.ToDomainInventory(m)
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// SaveSafeWithInventory inserts the safe and its inventory row in one
// database transaction, so a safe can never exist without an inventory.
func (r *PgxSafeRepository) SaveSafeWithInventory(ctx context.Context, safe domain.Safe, inventory domain.Inventory) error {
	modelSafe := mapping.ToModelSafe(safe)
	modelInventory, err := mapping.ToModelInventory(inventory)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	safeQuery := `
		INSERT INTO safes (safe_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, safeQuery,
		modelSafe.SafeID,
		modelSafe.Name,
		modelSafe.Description,
		modelSafe.IsActive,
		modelSafe.CreatedAt,
		modelSafe.CreatedBy,
		modelSafe.LastUpdatedAt,
		modelSafe.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert safe %s: %w", modelSafe.SafeID, err)
	}

	inventoryQuery := `
		INSERT INTO inventories (safe_id, bill_details, total_amount, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, inventoryQuery,
		modelInventory.SafeID,
		modelInventory.BillDetails,
		modelInventory.TotalAmount,
		modelInventory.LastUpdatedAt,
		modelInventory.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory for safe %s: %w", modelSafe.SafeID, err)
	}

	return r.Commit(ctx, tx)
}
