package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank account owned by a single user.
// Accounts are maintained elsewhere; the tax engine only reads them.
type Account struct {
	AccountID     string              `json:"accountID"` // Primary Key (e.g., UUID)
	UserID        string              `json:"userID"`    // Owning user
	Name          string              `json:"name"`
	MonthlyIncome decimal.NullDecimal `json:"monthlyIncome"` // Declared income per month; may be absent
	Balance       decimal.Decimal     `json:"balance"`
	AuditFields
}

// DeclaredMonthlyIncome returns the declared monthly income, treating an absent value as zero.
func (a Account) DeclaredMonthlyIncome() decimal.Decimal {
	if !a.MonthlyIncome.Valid {
		return decimal.Zero
	}
	return a.MonthlyIncome.Decimal
}
