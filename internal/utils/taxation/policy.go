package taxation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DefaultSlabs is the textual form of the default slab table (see ParseSlabs).
const DefaultSlabs = "300000:0,600000:0.05,900000:0.1,1200000:0.15,1500000:0.2,:0.3"

var validate = newPolicyValidator()

func newPolicyValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("fiscal_year", func(fl validator.FieldLevel) bool {
		_, _, err := ParseFiscalYear(fl.Field().String())
		return err == nil
	})
	return v
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() domain.TaxPolicy {
	slabs, err := ParseSlabs(DefaultSlabs)
	if err != nil {
		panic(fmt.Sprintf("default slab table does not parse: %v", err))
	}
	return domain.TaxPolicy{
		Period:                  "2024-25",
		Slabs:                   slabs,
		AppreciationRate:        decimal.RequireFromString("0.10"),
		ShortTermGainsRate:      decimal.RequireFromString("0.15"),
		CessRate:                decimal.RequireFromString("0.04"),
		HousingDeductionCap:     decimal.NewFromInt(50000),
		FixedStatutoryDeduction: decimal.NewFromInt(10000),
		IdentityPlaceholder:     "ABCDE1234F",
		NetCapitalLosses:        false,
		HoldingsScope:           domain.HoldingsScopeUser,
	}
}

// ValidatePolicy checks structural constraints and the slab table.
func ValidatePolicy(policy domain.TaxPolicy) error {
	if err := validate.Struct(policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	if err := ValidateSlabs(policy.Slabs); err != nil {
		return err
	}

	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"appreciation rate", policy.AppreciationRate},
		{"short-term gains rate", policy.ShortTermGainsRate},
		{"cess rate", policy.CessRate},
	}
	for _, r := range rates {
		if r.rate.IsNegative() || r.rate.GreaterThan(one) {
			return fmt.Errorf("%w: %s %s outside [0, 1]", ErrInvalidPolicy, r.name, r.rate)
		}
	}
	if policy.HousingDeductionCap.IsNegative() {
		return fmt.Errorf("%w: housing deduction cap must not be negative", ErrInvalidPolicy)
	}
	if policy.FixedStatutoryDeduction.IsNegative() {
		return fmt.Errorf("%w: fixed statutory deduction must not be negative", ErrInvalidPolicy)
	}
	return nil
}

// ParseSlabs parses a comma separated list of "upperBound:rate" pairs. An empty upper bound marks the
// open-ended top slab, e.g. "300000:0,600000:0.05,:0.10".
func ParseSlabs(s string) ([]domain.Slab, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: slab table is empty", ErrInvalidPolicy)
	}

	var slabs []domain.Slab
	for i, part := range strings.Split(s, ",") {
		bound, rateStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: slab %d %q must be upperBound:rate", ErrInvalidPolicy, i, part)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rateStr))
		if err != nil {
			return nil, fmt.Errorf("%w: slab %d rate %q: %v", ErrInvalidPolicy, i, rateStr, err)
		}

		slab := domain.Slab{Rate: rate}
		if bound = strings.TrimSpace(bound); bound != "" {
			upper, err := decimal.NewFromString(bound)
			if err != nil {
				return nil, fmt.Errorf("%w: slab %d upper bound %q: %v", ErrInvalidPolicy, i, bound, err)
			}
			slab.UpperBound = decimal.NewNullDecimal(upper)
		}
		slabs = append(slabs, slab)
	}
	return slabs, ValidateSlabs(slabs)
}

// FormatSlabs renders slabs in the ParseSlabs format. Decimals are written in canonical form.
func FormatSlabs(slabs []domain.Slab) string {
	parts := make([]string, len(slabs))
	for i, slab := range slabs {
		bound := ""
		if slab.UpperBound.Valid {
			bound = slab.UpperBound.Decimal.String()
		}
		parts[i] = bound + ":" + slab.Rate.String()
	}
	return strings.Join(parts, ",")
}

// ParseFiscalYear converts a fiscal year label such as "2024-25" into its start and end instants.
// Fiscal years run from 1 April to 31 March.
func ParseFiscalYear(label string) (time.Time, time.Time, error) {
	startStr, endStr, ok := strings.Cut(label, "-")
	if !ok || len(startStr) != 4 || len(endStr) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid financial year format: %q (expected YYYY-YY)", label)
	}
	startYear, err := strconv.Atoi(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start year in financial year %q", label)
	}
	endYear, err := strconv.Atoi(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end year in financial year %q", label)
	}
	if (startYear+1)%100 != endYear {
		return time.Time{}, time.Time{}, fmt.Errorf("financial year %q must span consecutive years", label)
	}

	start := time.Date(startYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, time.March, 31, 23, 59, 59, 0, time.UTC)
	return start, end, nil
}
