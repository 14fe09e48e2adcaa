package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Holding represents a stock position.
type Holding struct {
	HoldingID     string              `db:"holding_id"`
	UserID        string              `db:"user_id"`
	AccountID     sql.NullString      `db:"account_id"`
	Symbol        string              `db:"symbol"`
	PurchasePrice decimal.NullDecimal `db:"purchase_price"`
	Quantity      decimal.NullDecimal `db:"quantity"`
	AuditFields
}
