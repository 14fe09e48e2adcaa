package repositories

import (
	"context"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
)

// TaxRecordWriter appends tax records. Records are never updated.
type TaxRecordWriter interface {
	// SaveTaxRecord persists a new record.
	SaveTaxRecord(ctx context.Context, record domain.TaxRecord) error
}

// TaxRecordReader defines read operations for tax records
type TaxRecordReader interface {
	// ListTaxRecordsByOwner returns the user's records for period, newest first.
	// An empty period lists all periods.
	ListTaxRecordsByOwner(ctx context.Context, userID string, period string) ([]domain.TaxRecord, error)
}

// TaxRecordRepositoryFacade combines all tax-record repository interfaces
type TaxRecordRepositoryFacade interface {
	TaxRecordWriter
	TaxRecordReader
}
