package pgsql

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		PersonRepo:      newPgxPersonRepository(dbPool),
		CostCenterRepo:  newPgxCostCenterRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AggregationRepo: newAggregationRepository(dbPool),
		IdentityRepo:    newPgxIdentityRepository(dbPool),
	}
}
