package taxation

import (
	"fmt"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HoldingGain computes the projected gain of a single complete holding:
// (purchasePrice × (1 + appreciationRate) − purchasePrice) × quantity.
func HoldingGain(h domain.Holding, appreciationRate decimal.Decimal) decimal.Decimal {
	price := h.PurchasePrice.Decimal
	projected := price.Mul(decimal.NewFromInt(1).Add(appreciationRate))
	return projected.Sub(price).Mul(h.Quantity.Decimal)
}

// CapitalGains aggregates the projected gains of holdings and the flat short-term gains tax on them.
//
// Incomplete holdings are skipped with a diagnostic. Unless the policy nets capital losses, each
// holding's gain is floored at zero before summing. The gains tax is only computed when the aggregate
// is positive.
func CapitalGains(holdings []domain.Holding, policy domain.TaxPolicy) (gains, gainsTax decimal.Decimal, diagnostics []domain.Diagnostic) {
	gains = decimal.Zero
	gainsTax = decimal.Zero

	for _, h := range holdings {
		if !h.IsComplete() {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:     domain.IncompleteHolding,
				RecordID: h.HoldingID,
				Reason:   fmt.Sprintf("skipping holding %s with missing purchase price or quantity", h.Symbol),
			})
			continue
		}

		gain := HoldingGain(h, policy.AppreciationRate)
		if !policy.NetCapitalLosses && gain.IsNegative() {
			continue
		}
		gains = gains.Add(gain)
	}

	if !gains.IsPositive() {
		return decimal.Zero, decimal.Zero, diagnostics
	}

	gainsTax = gains.Mul(policy.ShortTermGainsRate)
	return gains, gainsTax, diagnostics
}
