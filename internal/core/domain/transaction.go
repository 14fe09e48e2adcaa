package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCategory is the enumerated tag attached to a transaction.
// Unknown categories are carried through untouched.
type TransactionCategory string

const (
	CategoryHousing       TransactionCategory = "Housing"
	CategoryStockPurchase TransactionCategory = "Stock Purchase"
	CategoryUncategorized TransactionCategory = "Other"
)

// Transaction represents a single categorized movement on an account.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary Key (e.g., UUID)
	UserID        string              `json:"userID"`        // Owning user
	AccountID     string              `json:"accountID"`     // FK -> Account.accountID
	Category      TransactionCategory `json:"category"`
	Description   string              `json:"description"`
	Symbol        string              `json:"symbol,omitempty"` // Instrument symbol for stock purchases; empty on legacy rows
	Amount        decimal.Decimal     `json:"amount"`
	Date          time.Time           `json:"date"`
	AuditFields
}

// IsStockPurchase reports whether the transaction records the purchase of an instrument.
func (t Transaction) IsStockPurchase() bool {
	return t.Category == CategoryStockPurchase
}
