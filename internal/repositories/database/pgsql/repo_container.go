package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SafeRepo:        newPgxSafeRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PermissionRepo:  newPgxPermissionRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
