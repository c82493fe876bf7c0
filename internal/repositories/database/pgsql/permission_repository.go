package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	"github.com/cashvault/cashvault_backend/internal/models"
	"github.com/cashvault/cashvault_backend/internal/utils/mapping"
)

type PgxPermissionRepository struct {
	db *pgxpool.Pool
}

func newPgxPermissionRepository(db *pgxpool.Pool) portsrepo.PermissionRepositoryFacade {
	return &PgxPermissionRepository{db: db}
}

var _ portsrepo.PermissionRepositoryFacade = (*PgxPermissionRepository)(nil)

const permissionColumns = `user_id, safe_id, can_read, can_write, can_manage, created_at, created_by, last_updated_at, last_updated_by`

func scanPermission(row pgx.Row) (*models.SafePermission, error) {
	var m models.SafePermission
	err := row.Scan(
		&m.UserID,
		&m.SafeID,
		&m.CanRead,
		&m.CanWrite,
		&m.CanManage,
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

func (r *PgxPermissionRepository) UpsertPermission(ctx context.Context, permission domain.SafePermission) error {
	m := mapping.ToModelSafePermission(permission)
	query := `
		INSERT INTO user_safe_permissions (user_id, safe_id, can_read, can_write, can_manage, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, safe_id) DO UPDATE SET
			can_read = EXCLUDED.can_read,
			can_write = EXCLUDED.can_write,
			can_manage = EXCLUDED.can_manage,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.SafeID,
		m.CanRead,
		m.CanWrite,
		m.CanManage,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert permission for user %s on safe %s: %w", m.UserID, m.SafeID, err)
	}
	return nil
}

func (r *PgxPermissionRepository) DeletePermission(ctx context.Context, userID, safeID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_safe_permissions WHERE user_id = $1 AND safe_id = $2;`, userID, safeID)
	if err != nil {
		return fmt.Errorf("failed to delete permission for user %s on safe %s: %w", userID, safeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPermissionRepository) FindPermission(ctx context.Context, userID, safeID string) (*domain.SafePermission, error) {
	query := `SELECT ` + permissionColumns + ` FROM user_safe_permissions WHERE user_id = $1 AND safe_id = $2;`
	m, err := scanPermission(r.db.QueryRow(ctx, query, userID, safeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find permission for user %s on safe %s: %w", userID, safeID, err)
	}
	perm := mapping.ToDomainSafePermission(*m)
	return &perm, nil
}

func (r *PgxPermissionRepository) ListPermissionsByUser(ctx context.Context, userID string) ([]domain.SafePermission, error) {
	query := `SELECT ` + permissionColumns + ` FROM user_safe_permissions WHERE user_id = $1 ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var perms []domain.SafePermission
	for rows.Next() {
		m, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permission row: %w", err)
		}
		perms = append(perms, mapping.ToDomainSafePermission(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating permission rows: %w", err)
	}
	return perms, nil
}

func (r *PgxPermissionRepository) ListReadableSafeIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT p.safe_id
		FROM user_safe_permissions p
		JOIN safes s ON s.safe_id = p.safe_id
		WHERE p.user_id = $1 AND p.can_read AND s.is_active
		ORDER BY s.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list readable safes for user %s: %w", userID, err)
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
