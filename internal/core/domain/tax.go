package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiagnosticKind classifies a record that was skipped during aggregation.
type DiagnosticKind string

const (
	MalformedDescription DiagnosticKind = "MALFORMED_DESCRIPTION"
	IncompleteHolding    DiagnosticKind = "INCOMPLETE_HOLDING"
)

// Diagnostic explains why an input record was excluded from a computation.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	RecordID string         `json:"recordID"`
	Reason   string         `json:"reason"`
}

// SlabCharge is the tax levied within a single band.
type SlabCharge struct {
	LowerBound decimal.Decimal     `json:"lowerBound"` // Exclusive
	UpperBound decimal.NullDecimal `json:"upperBound"` // Inclusive; null for the top band
	Rate       decimal.Decimal     `json:"rate"`
	BaseTax    decimal.Decimal     `json:"baseTax"` // Cumulative tax owed at LowerBound
	Taxed      decimal.Decimal     `json:"taxed"`   // Portion of taxable income falling in this band
	Tax        decimal.Decimal     `json:"tax"`
}

// Assessment holds every intermediate figure of one computation.
// Both the persisted record and the form summary are projections of it.
type Assessment struct {
	Period             string
	SalaryEquivalent   decimal.Decimal
	CapitalGains       decimal.Decimal
	CapitalGainsTax    decimal.Decimal
	TotalIncome        decimal.Decimal
	HousingExpenses    decimal.Decimal
	HousingDeduction   decimal.Decimal
	StatutoryDeduction decimal.Decimal
	Deductions         decimal.Decimal
	TaxableIncome      decimal.Decimal
	SlabTax            decimal.Decimal
	Breakdown          []SlabCharge
	TaxBeforeCess      decimal.Decimal
	Cess               decimal.Decimal
	TaxLiability       decimal.Decimal
	Symbols            []string
	Diagnostics        []Diagnostic
}

// TaxRecord is the persisted outcome of a computation. Records are append-only.
type TaxRecord struct {
	TaxRecordID   string          `json:"taxRecordID"`
	UserID        string          `json:"userID"`
	AccountID     string          `json:"accountID"`
	Period        string          `json:"period"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	Deductions    decimal.Decimal `json:"deductions"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	TaxLiability  decimal.Decimal `json:"taxLiability"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TaxResult is returned to callers of a liability computation.
type TaxResult struct {
	TaxRecordID     string
	Period          string
	TotalIncome     decimal.Decimal
	Deductions      decimal.Decimal
	TaxableIncome   decimal.Decimal
	TaxLiability    decimal.Decimal
	CapitalGains    decimal.Decimal
	CapitalGainsTax decimal.Decimal
	SlabTax         decimal.Decimal
	Cess            decimal.Decimal
	Breakdown       []SlabCharge
	Diagnostics     []Diagnostic
}

// FormSummary is a pre-filled tax form. It is never persisted.
type FormSummary struct {
	Period                     string
	DisplayName                string
	IdentityDocument           string
	AccountName                string
	TotalIncome                decimal.Decimal
	IncomeFromSalaryEquivalent decimal.Decimal
	IncomeFromCapitalGains     decimal.Decimal
	CapitalGainsTax            decimal.Decimal
	Deductions                 decimal.Decimal
	TaxableIncome              decimal.Decimal
	Diagnostics                []Diagnostic
}
