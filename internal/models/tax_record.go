package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRecord is an append-only row of the tax_records table.
type TaxRecord struct {
	TaxRecordID   string          `db:"tax_record_id"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	FinancialYear string          `db:"financial_year"`
	TotalIncome   decimal.Decimal `db:"total_income"`
	Deductions    decimal.Decimal `db:"deductions"`
	TaxableIncome decimal.Decimal `db:"taxable_income"`
	TaxLiability  decimal.Decimal `db:"tax_liability"`
	CreatedAt     time.Time       `db:"created_at"`
}
