package taxation

import (
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// SalaryEquivalent annualizes the account's declared monthly income. Absent income counts as zero.
func SalaryEquivalent(account domain.Account) decimal.Decimal {
	return account.DeclaredMonthlyIncome().Mul(monthsPerYear)
}

// TotalIncome combines annualized bank income with capital gains.
func TotalIncome(salaryEquivalent, capitalGains decimal.Decimal) decimal.Decimal {
	return salaryEquivalent.Add(capitalGains)
}
