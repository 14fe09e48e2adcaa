package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a row of the accounts table.
type Account struct {
	AccountID     string              `db:"account_id"`
	UserID        string              `db:"user_id"`
	Name          string              `db:"name"`
	MonthlyIncome decimal.NullDecimal `db:"monthly_income"` // Nullable
	Balance       decimal.Decimal     `db:"balance"`
	AuditFields
}
