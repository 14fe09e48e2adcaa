package repositories

import (
	"context"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
)

// TransactionReader defines read operations for bank transactions
type TransactionReader interface {
	// ListTransactionsByOwnerAndAccount returns every transaction of the account owned by userID.
	ListTransactionsByOwnerAndAccount(ctx context.Context, userID string, accountID string) ([]domain.Transaction, error)
}
