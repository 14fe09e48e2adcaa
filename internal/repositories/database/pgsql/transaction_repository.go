package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_liability_app/internal/core/ports/repositories"
	"github.com/SscSPs/tax_liability_app/internal/models"
	"github.com/SscSPs/tax_liability_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionReader {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

// ListTransactionsByOwnerAndAccount returns the account's transactions in date order.
func (r *PgxTransactionRepository) ListTransactionsByOwnerAndAccount(ctx context.Context, userID string, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, account_id, category, description, symbol, amount, transaction_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE user_id = $1 AND account_id = $2
		ORDER BY transaction_date ASC, transaction_id ASC;
	`
	rows, err := r.pool.Query(ctx, query, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.AccountID,
			&m.Category,
			&m.Description,
			&m.Symbol,
			&m.Amount,
			&m.TransactionDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
