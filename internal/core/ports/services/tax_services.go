package services

import (
	"context"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
)

// TaxCalculatorSvc computes liabilities and appends a record per computation
type TaxCalculatorSvc interface {
	// ComputeTax computes the liability for the user's account and appends a TaxRecord.
	// Every call appends a new record, even when the figures are unchanged.
	ComputeTax(ctx context.Context, userID string, accountID string) (*domain.TaxResult, error)
}

// TaxFormSvc builds pre-filled forms without persisting anything
type TaxFormSvc interface {
	// BuildForm computes the same figures as ComputeTax and returns them as a FormSummary.
	BuildForm(ctx context.Context, userID string, accountID string) (*domain.FormSummary, error)
}

// TaxRecordReaderSvc defines read operations over previously computed records
type TaxRecordReaderSvc interface {
	// ListTaxRecords returns the user's records for period, newest first.
	ListTaxRecords(ctx context.Context, userID string, period string) ([]domain.TaxRecord, error)

	// GetLatestTaxRecord returns the most recent record for period.
	GetLatestTaxRecord(ctx context.Context, userID string, period string) (*domain.TaxRecord, error)
}

// TaxPolicyReaderSvc exposes the configured policy
type TaxPolicyReaderSvc interface {
	Policy() domain.TaxPolicy
}

// TaxSvcFacade combines all tax-related service interfaces
// This is a facade for clients that need access to all operations
type TaxSvcFacade interface {
	TaxCalculatorSvc
	TaxFormSvc
	TaxRecordReaderSvc
	TaxPolicyReaderSvc
}
