package mapping

import (
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/SscSPs/tax_liability_app/internal/models"
)

// ToDomainHolding converts a model Holding to a domain Holding
func ToDomainHolding(m models.Holding) domain.Holding {
	return domain.Holding{
		HoldingID:     m.HoldingID,
		UserID:        m.UserID,
		AccountID:     m.AccountID.String,
		Symbol:        m.Symbol,
		PurchasePrice: m.PurchasePrice,
		Quantity:      m.Quantity,
	}
}

// ToDomainHoldingSlice converts a slice of model Holdings to a slice of domain Holdings
func ToDomainHoldingSlice(ms []models.Holding) []domain.Holding {
	ds := make([]domain.Holding, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHolding(m)
	}
	return ds
}
