package repositories

import (
	"context"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByIDAndOwner retrieves an account only if it belongs to userID.
	// Returns apperrors.ErrNotFound when the account does not exist or is owned by someone else.
	FindAccountByIDAndOwner(ctx context.Context, accountID string, userID string) (*domain.Account, error)
}
