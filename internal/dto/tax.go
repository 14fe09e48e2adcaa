package dto

import (
	"time"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/SscSPs/tax_liability_app/internal/utils/taxation"
	"github.com/shopspring/decimal"
)

// BankAccountQuery identifies the account a tax computation runs against.
type BankAccountQuery struct {
	BankAccountID string `form:"bankAccountId" binding:"required"`
}

// TaxRecordsQuery filters record listings. An empty financial year means the configured one.
type TaxRecordsQuery struct {
	FinancialYear string `form:"financialYear"`
}

// DiagnosticResponse reports a record that was excluded from the computation.
type DiagnosticResponse struct {
	Kind     string `json:"kind"`
	RecordID string `json:"recordID"`
	Reason   string `json:"reason"`
}

// SlabChargeResponse is one band of the progressive table.
type SlabChargeResponse struct {
	LowerBound decimal.Decimal  `json:"lowerBound"`
	UpperBound *decimal.Decimal `json:"upperBound,omitempty"` // Omitted for the open-ended top band
	Rate       decimal.Decimal  `json:"rate"`
	BaseTax    decimal.Decimal  `json:"baseTax"`
	Taxed      decimal.Decimal  `json:"taxed"`
	Tax        decimal.Decimal  `json:"tax"`
}

// TaxCalculationResponse is returned by POST /tax/calculate.
type TaxCalculationResponse struct {
	TaxRecordID   string               `json:"taxRecordID"`
	FinancialYear string               `json:"financialYear"`
	TotalIncome   decimal.Decimal      `json:"totalIncome"`
	Deductions    decimal.Decimal      `json:"deductions"`
	TaxableIncome decimal.Decimal      `json:"taxableIncome"`
	TaxLiability  decimal.Decimal      `json:"taxLiability"`
	CapitalGains  decimal.Decimal      `json:"capitalGains"`
	StcgTax       decimal.Decimal      `json:"stcgTax"`
	SlabTax       decimal.Decimal      `json:"slabTax"`
	Cess          decimal.Decimal      `json:"cess"`
	Breakdown     []SlabChargeResponse `json:"breakdown"`
	Diagnostics   []DiagnosticResponse `json:"diagnostics"`
}

// TaxFormResponse is the pre-filled form returned by GET /tax/form.
type TaxFormResponse struct {
	FinancialYear          string               `json:"financialYear"`
	Name                   string               `json:"name"`
	PAN                    string               `json:"pan"`
	BankAccountName        string               `json:"bankAccountName"`
	TotalIncome            decimal.Decimal      `json:"totalIncome"`
	IncomeFromSalary       decimal.Decimal      `json:"incomeFromSalary"`
	IncomeFromCapitalGains decimal.Decimal      `json:"incomeFromCapitalGains"`
	StcgTax                decimal.Decimal      `json:"stcgTax"`
	Deductions             decimal.Decimal      `json:"deductions"`
	TaxableIncome          decimal.Decimal      `json:"taxableIncome"`
	Diagnostics            []DiagnosticResponse `json:"diagnostics"`
}

// TaxRecordResponse is a persisted computation.
type TaxRecordResponse struct {
	TaxRecordID   string          `json:"taxRecordID"`
	BankAccountID string          `json:"bankAccountID"`
	FinancialYear string          `json:"financialYear"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	Deductions    decimal.Decimal `json:"deductions"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	TaxLiability  decimal.Decimal `json:"taxLiability"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TaxPolicyResponse describes the configured policy.
type TaxPolicyResponse struct {
	FinancialYear           string               `json:"financialYear"`
	Slabs                   []SlabChargeResponse `json:"slabs"`
	AppreciationRate        decimal.Decimal      `json:"appreciationRate"`
	ShortTermGainsRate      decimal.Decimal      `json:"shortTermGainsRate"`
	CessRate                decimal.Decimal      `json:"cessRate"`
	HousingDeductionCap     decimal.Decimal      `json:"housingDeductionCap"`
	FixedStatutoryDeduction decimal.Decimal      `json:"fixedStatutoryDeduction"`
	NetCapitalLosses        bool                 `json:"netCapitalLosses"`
	HoldingsScope           string               `json:"holdingsScope"`
}

func toDiagnosticResponses(diagnostics []domain.Diagnostic) []DiagnosticResponse {
	res := make([]DiagnosticResponse, len(diagnostics))
	for i, d := range diagnostics {
		res[i] = DiagnosticResponse{Kind: string(d.Kind), RecordID: d.RecordID, Reason: d.Reason}
	}
	return res
}

func toSlabChargeResponses(charges []domain.SlabCharge) []SlabChargeResponse {
	res := make([]SlabChargeResponse, len(charges))
	for i, c := range charges {
		res[i] = SlabChargeResponse{
			LowerBound: c.LowerBound,
			Rate:       c.Rate,
			BaseTax:    c.BaseTax,
			Taxed:      c.Taxed,
			Tax:        c.Tax,
		}
		if c.UpperBound.Valid {
			upper := c.UpperBound.Decimal
			res[i].UpperBound = &upper
		}
	}
	return res
}

// ToTaxCalculationResponse converts a domain.TaxResult to its response DTO
func ToTaxCalculationResponse(r *domain.TaxResult) TaxCalculationResponse {
	return TaxCalculationResponse{
		TaxRecordID:   r.TaxRecordID,
		FinancialYear: r.Period,
		TotalIncome:   r.TotalIncome,
		Deductions:    r.Deductions,
		TaxableIncome: r.TaxableIncome,
		TaxLiability:  r.TaxLiability,
		CapitalGains:  r.CapitalGains,
		StcgTax:       r.CapitalGainsTax,
		SlabTax:       r.SlabTax,
		Cess:          r.Cess,
		Breakdown:     toSlabChargeResponses(r.Breakdown),
		Diagnostics:   toDiagnosticResponses(r.Diagnostics),
	}
}

// ToTaxFormResponse converts a domain.FormSummary to its response DTO
func ToTaxFormResponse(f *domain.FormSummary) TaxFormResponse {
	return TaxFormResponse{
		FinancialYear:          f.Period,
		Name:                   f.DisplayName,
		PAN:                    f.IdentityDocument,
		BankAccountName:        f.AccountName,
		TotalIncome:            f.TotalIncome,
		IncomeFromSalary:       f.IncomeFromSalaryEquivalent,
		IncomeFromCapitalGains: f.IncomeFromCapitalGains,
		StcgTax:                f.CapitalGainsTax,
		Deductions:             f.Deductions,
		TaxableIncome:          f.TaxableIncome,
		Diagnostics:            toDiagnosticResponses(f.Diagnostics),
	}
}

// ToTaxRecordResponse converts a domain.TaxRecord to its response DTO
func ToTaxRecordResponse(r *domain.TaxRecord) TaxRecordResponse {
	return TaxRecordResponse{
		TaxRecordID:   r.TaxRecordID,
		BankAccountID: r.AccountID,
		FinancialYear: r.Period,
		TotalIncome:   r.TotalIncome,
		Deductions:    r.Deductions,
		TaxableIncome: r.TaxableIncome,
		TaxLiability:  r.TaxLiability,
		CreatedAt:     r.CreatedAt,
	}
}

// ToListTaxRecordResponse converts a slice of domain.TaxRecord to response DTOs
func ToListTaxRecordResponse(records []domain.TaxRecord) []TaxRecordResponse {
	res := make([]TaxRecordResponse, len(records))
	for i, r := range records {
		res[i] = ToTaxRecordResponse(&r)
	}
	return res
}

// ToTaxPolicyResponse describes the policy, including each band's derived base tax.
func ToTaxPolicyResponse(p domain.TaxPolicy) (TaxPolicyResponse, error) {
	bands, err := taxation.Bands(p.Slabs)
	if err != nil {
		return TaxPolicyResponse{}, err
	}
	slabs := toSlabChargeResponses(bands)
	return TaxPolicyResponse{
		FinancialYear:           p.Period,
		Slabs:                   slabs,
		AppreciationRate:        p.AppreciationRate,
		ShortTermGainsRate:      p.ShortTermGainsRate,
		CessRate:                p.CessRate,
		HousingDeductionCap:     p.HousingDeductionCap,
		FixedStatutoryDeduction: p.FixedStatutoryDeduction,
		NetCapitalLosses:        p.NetCapitalLosses,
		HoldingsScope:           string(p.HoldingsScope),
	}, nil
}
