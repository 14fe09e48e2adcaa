package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/tax_liability_app/internal/apperrors"
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_liability_app/internal/core/ports/repositories"
	"github.com/SscSPs/tax_liability_app/internal/models"
	"github.com/SscSPs/tax_liability_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountReader {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountReader
var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

// FindAccountByIDAndOwner retrieves an account by its ID, scoped to its owner.
// An account owned by another user is reported as not found.
func (r *PgxAccountRepository) FindAccountByIDAndOwner(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, name, monthly_income, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE account_id = $1 AND user_id = $2;
	`
	var modelAcc models.Account
	err := r.pool.QueryRow(ctx, query, accountID, userID).Scan(
		&modelAcc.AccountID,
		&modelAcc.UserID,
		&modelAcc.Name,
		&modelAcc.MonthlyIncome,
		&modelAcc.Balance,
		&modelAcc.CreatedAt,
		&modelAcc.CreatedBy,
		&modelAcc.LastUpdatedAt,
		&modelAcc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(modelAcc)
	return &account, nil
}
