package taxation

import (
	"errors"
	"fmt"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidPolicy indicates the configured tax policy cannot be applied.
var ErrInvalidPolicy = errors.New("invalid tax policy")

var one = decimal.NewFromInt(1)

// ValidateSlabs checks that the table is non-empty, that bounded slabs have strictly increasing positive
// upper bounds, that only the last slab is open-ended and that every rate lies in [0, 1].
func ValidateSlabs(slabs []domain.Slab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("%w: slab table is empty", ErrInvalidPolicy)
	}

	lower := decimal.Zero
	for i, slab := range slabs {
		if slab.Rate.IsNegative() || slab.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: slab %d rate %s outside [0, 1]", ErrInvalidPolicy, i, slab.Rate)
		}

		last := i == len(slabs)-1
		if slab.IsUnbounded() {
			if !last {
				return fmt.Errorf("%w: only the last slab may be open-ended (slab %d)", ErrInvalidPolicy, i)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: last slab must be open-ended", ErrInvalidPolicy)
		}
		if !slab.UpperBound.Decimal.GreaterThan(lower) {
			return fmt.Errorf("%w: slab %d upper bound %s must exceed %s", ErrInvalidPolicy, i, slab.UpperBound.Decimal, lower)
		}
		lower = slab.UpperBound.Decimal
	}
	return nil
}

// Bands derives each slab's lower bound and base tax (the cumulative tax owed at its lower bound)
// from the table, so the table stays the single source of truth.
func Bands(slabs []domain.Slab) ([]domain.SlabCharge, error) {
	if err := ValidateSlabs(slabs); err != nil {
		return nil, err
	}

	bands := make([]domain.SlabCharge, len(slabs))
	lower := decimal.Zero
	base := decimal.Zero
	for i, slab := range slabs {
		bands[i] = domain.SlabCharge{
			LowerBound: lower,
			UpperBound: slab.UpperBound,
			Rate:       slab.Rate,
			BaseTax:    base,
			Taxed:      decimal.Zero,
			Tax:        decimal.Zero,
		}
		if slab.IsUnbounded() {
			break
		}
		width := slab.UpperBound.Decimal.Sub(lower)
		base = base.Add(width.Mul(slab.Rate))
		lower = slab.UpperBound.Decimal
	}
	return bands, nil
}

// SlabTax applies the progressive table to taxableIncome and returns the total tax along with the
// charge of every band the income reaches.
func SlabTax(taxableIncome decimal.Decimal, slabs []domain.Slab) (decimal.Decimal, []domain.SlabCharge, error) {
	bands, err := Bands(slabs)
	if err != nil {
		return decimal.Zero, nil, err
	}

	total := decimal.Zero
	charges := make([]domain.SlabCharge, 0, len(bands))
	for _, band := range bands {
		if !taxableIncome.GreaterThan(band.LowerBound) {
			break
		}
		upper := taxableIncome
		if band.UpperBound.Valid {
			upper = decimal.Min(taxableIncome, band.UpperBound.Decimal)
		}
		band.Taxed = upper.Sub(band.LowerBound)
		band.Tax = band.Taxed.Mul(band.Rate)
		total = total.Add(band.Tax)
		charges = append(charges, band)
	}
	return total, charges, nil
}
