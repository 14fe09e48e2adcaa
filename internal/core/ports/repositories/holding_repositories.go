package repositories

import (
	"context"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
)

// HoldingReader defines read operations for stock holdings
type HoldingReader interface {
	// FindHoldingsByOwnerAndSymbols returns the user's holdings whose symbol is in symbols.
	// A non-empty accountID restricts the result to holdings tied to that account.
	FindHoldingsByOwnerAndSymbols(ctx context.Context, userID string, symbols []string, accountID string) ([]domain.Holding, error)
}
