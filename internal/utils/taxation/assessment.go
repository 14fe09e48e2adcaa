package taxation

import (
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
)

// Assess runs the full computation for one account in a single pass:
// symbols → capital gains → income → deductions → slab tax → cess.
//
// Holdings whose symbol was not bought through the account's transactions are ignored, as are holdings
// tied to another account when the policy scopes holdings to the account. Malformed records never fail
// the assessment; they are reported in Diagnostics.
func Assess(policy domain.TaxPolicy, account domain.Account, transactions []domain.Transaction, holdings []domain.Holding) (*domain.Assessment, error) {
	if err := ValidatePolicy(policy); err != nil {
		return nil, err
	}

	symbols, diagnostics := CollectSymbols(transactions)
	eligible := eligibleHoldings(policy, account, symbols, holdings)

	gains, gainsTax, gainDiagnostics := CapitalGains(eligible, policy)
	diagnostics = append(diagnostics, gainDiagnostics...)

	salary := SalaryEquivalent(account)
	totalIncome := TotalIncome(salary, gains)

	deductions := Deductions(transactions, policy)
	taxable := TaxableIncome(totalIncome, deductions.Total)

	slabTax, breakdown, err := SlabTax(taxable, policy.Slabs)
	if err != nil {
		return nil, err
	}
	beforeCess, cess, liability := Liability(slabTax, gainsTax, policy.CessRate)

	return &domain.Assessment{
		Period:             policy.Period,
		SalaryEquivalent:   salary,
		CapitalGains:       gains,
		CapitalGainsTax:    gainsTax,
		TotalIncome:        totalIncome,
		HousingExpenses:    deductions.HousingExpenses,
		HousingDeduction:   deductions.HousingDeduction,
		StatutoryDeduction: deductions.StatutoryDeduction,
		Deductions:         deductions.Total,
		TaxableIncome:      taxable,
		SlabTax:            slabTax,
		Breakdown:          breakdown,
		TaxBeforeCess:      beforeCess,
		Cess:               cess,
		TaxLiability:       liability,
		Symbols:            symbols,
		Diagnostics:        diagnostics,
	}, nil
}

func eligibleHoldings(policy domain.TaxPolicy, account domain.Account, symbols []string, holdings []domain.Holding) []domain.Holding {
	if len(symbols) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		wanted[s] = struct{}{}
	}

	eligible := make([]domain.Holding, 0, len(holdings))
	for _, h := range holdings {
		if _, ok := wanted[h.Symbol]; !ok {
			continue
		}
		if policy.HoldingsScope == domain.HoldingsScopeAccount && h.AccountID != account.AccountID {
			continue
		}
		eligible = append(eligible, h)
	}
	return eligible
}
