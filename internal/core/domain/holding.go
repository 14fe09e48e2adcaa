package domain

import "github.com/shopspring/decimal"

// Holding represents a stock position held by a user.
type Holding struct {
	HoldingID     string              `json:"holdingID"`
	UserID        string              `json:"userID"`
	AccountID     string              `json:"accountID,omitempty"` // Empty when the position is not tied to an account
	Symbol        string              `json:"symbol"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice"` // Per unit
	Quantity      decimal.NullDecimal `json:"quantity"`
}

// IsComplete reports whether the holding has a non-zero purchase price and quantity.
// Incomplete holdings are excluded from gain computation.
func (h Holding) IsComplete() bool {
	return h.PurchasePrice.Valid && !h.PurchasePrice.Decimal.IsZero() &&
		h.Quantity.Valid && !h.Quantity.Decimal.IsZero()
}
