package domain

import "github.com/shopspring/decimal"

// HoldingsScope controls which of a user's holdings are considered for a single account's computation.
type HoldingsScope string

const (
	// HoldingsScopeUser matches holdings across all of the user's accounts by symbol.
	HoldingsScopeUser HoldingsScope = "user"
	// HoldingsScopeAccount only matches holdings tied to the selected account.
	HoldingsScopeAccount HoldingsScope = "account"
)

// Slab is one band of the progressive table. UpperBound is inclusive; an invalid
// (null) UpperBound marks the open-ended top band.
type Slab struct {
	UpperBound decimal.NullDecimal `json:"upperBound"`
	Rate       decimal.Decimal     `json:"rate"`
}

// IsUnbounded reports whether the slab has no upper limit.
func (s Slab) IsUnbounded() bool {
	return !s.UpperBound.Valid
}

// TaxPolicy is the versioned set of constants the engine applies.
type TaxPolicy struct {
	Period                  string          `json:"period" validate:"required,fiscal_year"`
	Slabs                   []Slab          `json:"slabs" validate:"required,min=1"`
	AppreciationRate        decimal.Decimal `json:"appreciationRate"`
	ShortTermGainsRate      decimal.Decimal `json:"shortTermGainsRate"`
	CessRate                decimal.Decimal `json:"cessRate"`
	HousingDeductionCap     decimal.Decimal `json:"housingDeductionCap"`
	FixedStatutoryDeduction decimal.Decimal `json:"fixedStatutoryDeduction"`
	IdentityPlaceholder     string          `json:"identityPlaceholder" validate:"required"`
	NetCapitalLosses        bool            `json:"netCapitalLosses"`
	HoldingsScope           HoldingsScope   `json:"holdingsScope" validate:"required,oneof=user account"`
}

// MaxDeductions is the largest total deduction the policy can produce.
func (p TaxPolicy) MaxDeductions() decimal.Decimal {
	return p.HousingDeductionCap.Add(p.FixedStatutoryDeduction)
}
