package pgsql

import (
	portsrepo "github.com/SscSPs/tax_liability_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		HoldingRepo:     newPgxHoldingRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		TaxRecordRepo:   newPgxTaxRecordRepository(dbPool),
	}
}
