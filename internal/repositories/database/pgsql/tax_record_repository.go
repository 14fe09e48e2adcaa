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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaxRecordRepository struct {
	BaseRepository
}

func newPgxTaxRecordRepository(pool *pgxpool.Pool) *PgxTaxRecordRepository {
	return &PgxTaxRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.TaxRecordRepositoryFacade = (*PgxTaxRecordRepository)(nil)
	_ portsrepo.TransactionManager        = (*PgxTaxRecordRepository)(nil)
)

// SaveTaxRecord appends a record inside its own database transaction.
func (r *PgxTaxRecordRepository) SaveTaxRecord(ctx context.Context, record domain.TaxRecord) error {
	m := mapping.ToModelTaxRecord(record)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once committed
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO tax_records (
			tax_record_id, user_id, account_id, financial_year,
			total_income, deductions, taxable_income, tax_liability, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		m.TaxRecordID,
		m.UserID,
		m.AccountID,
		m.FinancialYear,
		m.TotalIncome,
		m.Deductions,
		m.TaxableIncome,
		m.TaxLiability,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: tax record %s already exists", apperrors.ErrDuplicate, m.TaxRecordID)
		}
		return fmt.Errorf("failed to insert tax record %s: %w", m.TaxRecordID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTaxRecordRepository) ListTaxRecordsByOwner(ctx context.Context, userID string, period string) ([]domain.TaxRecord, error) {
	query := `
		SELECT tax_record_id, user_id, account_id, financial_year,
		       total_income, deductions, taxable_income, tax_liability, created_at
		FROM tax_records
		WHERE user_id = $1 AND ($2::text = '' OR financial_year = $2::text)
		ORDER BY created_at DESC, tax_record_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax records: %w", err)
	}
	defer rows.Close()

	modelRecords := []models.TaxRecord{}
	for rows.Next() {
		var m models.TaxRecord
		if err := rows.Scan(
			&m.TaxRecordID,
			&m.UserID,
			&m.AccountID,
			&m.FinancialYear,
			&m.TotalIncome,
			&m.Deductions,
			&m.TaxableIncome,
			&m.TaxLiability,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tax record row: %w", err)
		}
		modelRecords = append(modelRecords, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax record rows: %w", err)
	}

	return mapping.ToDomainTaxRecordSlice(modelRecords), nil
}
