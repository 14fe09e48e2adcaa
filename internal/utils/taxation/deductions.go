package taxation

import (
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeductionSummary breaks total deductions into their parts.
type DeductionSummary struct {
	HousingExpenses    decimal.Decimal
	HousingDeduction   decimal.Decimal
	StatutoryDeduction decimal.Decimal
	Total              decimal.Decimal
}

// HousingExpenses sums the amounts of all Housing transactions.
func HousingExpenses(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Category == domain.CategoryHousing {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// Deductions applies the housing cap and the fixed statutory allowance.
// The housing part is clamped to [0, cap]; there is no income-based phase-out.
func Deductions(transactions []domain.Transaction, policy domain.TaxPolicy) DeductionSummary {
	housing := HousingExpenses(transactions)

	housingDeduction := decimal.Min(housing, policy.HousingDeductionCap)
	if housingDeduction.IsNegative() {
		housingDeduction = decimal.Zero
	}

	return DeductionSummary{
		HousingExpenses:    housing,
		HousingDeduction:   housingDeduction,
		StatutoryDeduction: policy.FixedStatutoryDeduction,
		Total:              housingDeduction.Add(policy.FixedStatutoryDeduction),
	}
}

// TaxableIncome is total income less deductions, never below zero.
func TaxableIncome(totalIncome, deductions decimal.Decimal) decimal.Decimal {
	return decimal.Max(totalIncome.Sub(deductions), decimal.Zero)
}
