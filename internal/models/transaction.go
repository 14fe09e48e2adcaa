package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a categorized bank transaction.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	AccountID       string          `db:"account_id"`
	Category        string          `db:"category"`
	Description     string          `db:"description"`
	Symbol          sql.NullString  `db:"symbol"` // Set for stock purchases recorded with a dedicated symbol
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}
