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

type PgxHoldingRepository struct {
	pool *pgxpool.Pool
}

func newPgxHoldingRepository(pool *pgxpool.Pool) portsrepo.HoldingReader {
	return &PgxHoldingRepository{pool: pool}
}

var _ portsrepo.HoldingReader = (*PgxHoldingRepository)(nil)

func (r *PgxHoldingRepository) FindHoldingsByOwnerAndSymbols(ctx context.Context, userID string, symbols []string, accountID string) ([]domain.Holding, error) {
	if len(symbols) == 0 {
		return []domain.Holding{}, nil
	}

	query := `
		SELECT holding_id, user_id, account_id, symbol, purchase_price, quantity,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM holdings
		WHERE user_id = $1
		  AND symbol = ANY($2)
		  AND ($3::text = '' OR account_id = $3::text)
		ORDER BY symbol ASC, holding_id ASC;
	`
	rows, err := r.pool.Query(ctx, query, userID, symbols, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var modelHoldings []models.Holding
	for rows.Next() {
		var m models.Holding
		if err := rows.Scan(
			&m.HoldingID,
			&m.UserID,
			&m.AccountID,
			&m.Symbol,
			&m.PurchasePrice,
			&m.Quantity,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holding row: %w", err)
		}
		modelHoldings = append(modelHoldings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding rows: %w", err)
	}

	return mapping.ToDomainHoldingSlice(modelHoldings), nil
}
