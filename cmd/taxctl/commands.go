package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/SscSPs/tax_liability_app/internal/utils/taxation"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const estimateAccountID = "estimate"

type policyLoader func() (domain.TaxPolicy, error)

func newRootCmd(load policyLoader) *cobra.Command {
	root := &cobra.Command{
		Use:          "taxctl",
		Short:        "Inspect the tax policy and estimate liabilities offline",
		SilenceUsage: true,
	}
	root.AddCommand(newSlabsCmd(load), newEstimateCmd(load))
	return root
}

func newSlabsCmd(load policyLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "slabs",
		Short: "Print the configured slab table with the base tax of each band",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := load()
			if err != nil {
				return err
			}
			bands, err := taxation.Bands(policy.Slabs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Financial year %s\n", policy.Period)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FROM\tUP TO\tRATE\tBASE TAX")
			for _, b := range bands {
				upTo := "-"
				if b.UpperBound.Valid {
					upTo = b.UpperBound.Decimal.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s%%\t%s\n", b.LowerBound, upTo, b.Rate.Shift(2), b.BaseTax)
			}
			return w.Flush()
		},
	}
}

type estimateOptions struct {
	monthlyIncome string
	housing       string
	holdings      []string
}

func newEstimateCmd(load policyLoader) *cobra.Command {
	opts := &estimateOptions{}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a liability without touching the database",
		Example: `  taxctl estimate --monthly-income 50000
  taxctl estimate --monthly-income 80000 --housing 24000 --holding INFY:1500:10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := load()
			if err != nil {
				return err
			}
			account, transactions, holdings, err := opts.inputs()
			if err != nil {
				return err
			}
			assessment, err := taxation.Assess(policy, account, transactions, holdings)
			if err != nil {
				return err
			}
			return printAssessment(cmd.OutOrStdout(), assessment)
		},
	}

	cmd.Flags().StringVar(&opts.monthlyIncome, "monthly-income", "0", "declared monthly income")
	cmd.Flags().StringVar(&opts.housing, "housing", "0", "total housing expenses for the year")
	cmd.Flags().StringArrayVar(&opts.holdings, "holding", nil, "holding bought through the account, as SYMBOL:PRICE:QTY (repeatable)")
	return cmd
}

// inputs turns the flags into the records an account would normally supply.
func (o *estimateOptions) inputs() (domain.Account, []domain.Transaction, []domain.Holding, error) {
	monthly, err := decimal.NewFromString(o.monthlyIncome)
	if err != nil {
		return domain.Account{}, nil, nil, fmt.Errorf("--monthly-income: %q is not a decimal", o.monthlyIncome)
	}
	housing, err := decimal.NewFromString(o.housing)
	if err != nil {
		return domain.Account{}, nil, nil, fmt.Errorf("--housing: %q is not a decimal", o.housing)
	}

	account := domain.Account{
		AccountID:     estimateAccountID,
		Name:          "estimate",
		MonthlyIncome: decimal.NewNullDecimal(monthly),
	}
	transactions := []domain.Transaction{{
		TransactionID: "housing",
		AccountID:     estimateAccountID,
		Category:      domain.CategoryHousing,
		Amount:        housing,
	}}

	holdings := make([]domain.Holding, 0, len(o.holdings))
	for i, raw := range o.holdings {
		h, err := parseHolding(raw)
		if err != nil {
			return domain.Account{}, nil, nil, err
		}
		h.HoldingID = fmt.Sprintf("holding-%d", i+1)
		h.AccountID = estimateAccountID
		holdings = append(holdings, h)
		transactions = append(transactions, domain.Transaction{
			TransactionID: fmt.Sprintf("purchase-%d", i+1),
			AccountID:     estimateAccountID,
			Category:      domain.CategoryStockPurchase,
			Symbol:        h.Symbol,
		})
	}
	return account, transactions, holdings, nil
}

func parseHolding(raw string) (domain.Holding, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 || strings.TrimSpace(parts[0]) == "" {
		return domain.Holding{}, fmt.Errorf("--holding %q: expected SYMBOL:PRICE:QTY", raw)
	}
	price, err := decimal.NewFromString(parts[1])
	if err != nil {
		return domain.Holding{}, fmt.Errorf("--holding %q: invalid price", raw)
	}
	qty, err := decimal.NewFromString(parts[2])
	if err != nil {
		return domain.Holding{}, fmt.Errorf("--holding %q: invalid quantity", raw)
	}
	return domain.Holding{
		Symbol:        strings.ToUpper(strings.TrimSpace(parts[0])),
		PurchasePrice: decimal.NewNullDecimal(price),
		Quantity:      decimal.NewNullDecimal(qty),
	}, nil
}

func printAssessment(out io.Writer, a *domain.Assessment) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Salary equivalent", a.SalaryEquivalent},
		{"Capital gains", a.CapitalGains},
		{"Total income", a.TotalIncome},
		{"Housing deduction", a.HousingDeduction},
		{"Statutory deduction", a.StatutoryDeduction},
		{"Taxable income", a.TaxableIncome},
		{"Slab tax", a.SlabTax},
		{"STCG tax", a.CapitalGainsTax},
		{"Cess", a.Cess},
		{"Tax liability", a.TaxLiability},
	}
	fmt.Fprintf(w, "Financial year\t%s\n", a.Period)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.label, r.value)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for _, d := range a.Diagnostics {
		fmt.Fprintf(out, "warning: %s %s: %s\n", d.Kind, d.RecordID, d.Reason)
	}
	return nil
}
