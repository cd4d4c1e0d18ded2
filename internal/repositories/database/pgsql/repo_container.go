package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		DebitCardRepo:  newPgxDebitCardRepository(dbPool),
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		VendorRepo:     newPgxVendorRepository(dbPool),
		PayableRepo:    newPgxPayableRepository(dbPool),
		ReceivableRepo: newPgxReceivableRepository(dbPool),
		ProjectRepo:    newPgxProjectRepository(dbPool),
		AssetRepo:      newPgxAssetRepository(dbPool),
		NoteRepo:       newPgxNoteRepository(dbPool),
		TodoRepo:       newPgxTodoRepository(dbPool),
	}
}
