package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tax_liability_app/internal/apperrors"
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_liability_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_liability_app/internal/core/ports/services"
	"github.com/SscSPs/tax_liability_app/internal/utils/taxation"
	"github.com/google/uuid"
)

// taxService implements the TaxSvcFacade interface
type taxService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
	holdingRepo     portsrepo.HoldingReader
	userRepo        portsrepo.UserReader
	recordRepo      portsrepo.TaxRecordRepositoryFacade

	policy domain.TaxPolicy
	now    func() time.Time
	newID  func() string
}

// TaxServiceOption is a functional option for configuring the tax service
type TaxServiceOption func(*taxService)

// WithTaxPolicy replaces the default policy.
func WithTaxPolicy(policy domain.TaxPolicy) TaxServiceOption {
	return func(s *taxService) {
		s.policy = policy
	}
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) TaxServiceOption {
	return func(s *taxService) {
		s.now = now
	}
}

// NewTaxService creates a new tax service with the provided options
func NewTaxService(repos portsrepo.RepositoryProvider, options ...TaxServiceOption) portssvc.TaxSvcFacade {
	svc := &taxService{
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		holdingRepo:     repos.HoldingRepo,
		userRepo:        repos.UserRepo,
		recordRepo:      repos.TaxRecordRepo,
		policy:          taxation.DefaultPolicy(),
		now:             time.Now,
		newID:           uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure taxService implements the TaxSvcFacade interface
var _ portssvc.TaxSvcFacade = (*taxService)(nil)

func validateOwnerAndAccount(userID, accountID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(accountID) == "" {
		return fmt.Errorf("%w: bank account id is required", apperrors.ErrValidation)
	}
	return nil
}

// assess gathers the account's records and runs the computation pipeline.
func (s *taxService) assess(ctx context.Context, userID, accountID string) (*domain.Account, *domain.Assessment, error) {
	account, err := s.accountRepo.FindAccountByIDAndOwner(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("bank account %s: %w", accountID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to fetch account", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	transactions, err := s.transactionRepo.ListTransactionsByOwnerAndAccount(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var holdings []domain.Holding
	symbols, _ := taxation.CollectSymbols(transactions)
	if len(symbols) > 0 {
		scopeAccountID := ""
		if s.policy.HoldingsScope == domain.HoldingsScopeAccount {
			scopeAccountID = accountID
		}
		holdings, err = s.holdingRepo.FindHoldingsByOwnerAndSymbols(ctx, userID, symbols, scopeAccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch holdings", slog.Int("symbol_count", len(symbols)))
			return nil, nil, fmt.Errorf("failed to fetch holdings: %w", err)
		}
	}

	assessment, err := taxation.Assess(s.policy, *account, transactions, holdings)
	if err != nil {
		s.LogError(ctx, err, "Tax computation failed", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrComputation, err)
	}

	for _, d := range assessment.Diagnostics {
		s.LogWarn(ctx, "Record excluded from tax computation",
			slog.String("kind", string(d.Kind)),
			slog.String("record_id", d.RecordID),
			slog.String("reason", d.Reason))
	}

	s.LogDebug(ctx, "Tax assessment computed",
		slog.String("account_id", accountID),
		slog.String("period", assessment.Period),
		slog.String("taxable_income", assessment.TaxableIncome.String()),
		slog.String("tax_liability", assessment.TaxLiability.String()))

	return account, assessment, nil
}

func (s *taxService) ComputeTax(ctx context.Context, userID string, accountID string) (*domain.TaxResult, error) {
	if err := validateOwnerAndAccount(userID, accountID); err != nil {
		return nil, err
	}

	_, assessment, err := s.assess(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	record := domain.TaxRecord{
		TaxRecordID:   s.newID(),
		UserID:        userID,
		AccountID:     accountID,
		Period:        assessment.Period,
		TotalIncome:   assessment.TotalIncome,
		Deductions:    assessment.Deductions,
		TaxableIncome: assessment.TaxableIncome,
		TaxLiability:  assessment.TaxLiability,
		CreatedAt:     s.now(),
	}

	if err := s.recordRepo.SaveTaxRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save tax record",
			slog.String("account_id", accountID),
			slog.String("tax_record_id", record.TaxRecordID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}

	s.LogInfo(ctx, "Tax record saved",
		slog.String("tax_record_id", record.TaxRecordID),
		slog.String("account_id", accountID),
		slog.String("period", record.Period))

	return &domain.TaxResult{
		TaxRecordID:     record.TaxRecordID,
		Period:          record.Period,
		TotalIncome:     assessment.TotalIncome,
		Deductions:      assessment.Deductions,
		TaxableIncome:   assessment.TaxableIncome,
		TaxLiability:    assessment.TaxLiability,
		CapitalGains:    assessment.CapitalGains,
		CapitalGainsTax: assessment.CapitalGainsTax,
		SlabTax:         assessment.SlabTax,
		Cess:            assessment.Cess,
		Breakdown:       assessment.Breakdown,
		Diagnostics:     assessment.Diagnostics,
	}, nil
}

func (s *taxService) BuildForm(ctx context.Context, userID string, accountID string) (*domain.FormSummary, error) {
	if err := validateOwnerAndAccount(userID, accountID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user profile %s: %w", userID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to fetch user profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	account, assessment, err := s.assess(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	return &domain.FormSummary{
		Period:                     assessment.Period,
		DisplayName:                user.DisplayName(),
		IdentityDocument:           s.policy.IdentityPlaceholder,
		AccountName:                account.Name,
		TotalIncome:                assessment.TotalIncome,
		IncomeFromSalaryEquivalent: assessment.SalaryEquivalent,
		IncomeFromCapitalGains:     assessment.CapitalGains,
		CapitalGainsTax:            assessment.CapitalGainsTax,
		Deductions:                 assessment.Deductions,
		TaxableIncome:              assessment.TaxableIncome,
		Diagnostics:                assessment.Diagnostics,
	}, nil
}

func (s *taxService) resolvePeriod(period string) (string, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return s.policy.Period, nil
	}
	if _, _, err := taxation.ParseFiscalYear(period); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return period, nil
}

func (s *taxService) ListTaxRecords(ctx context.Context, userID string, period string) ([]domain.TaxRecord, error) {
	period, err := s.resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListTaxRecordsByOwner(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax records", slog.String("period", period))
		return nil, fmt.Errorf("failed to list tax records: %w", err)
	}
	return records, nil
}

func (s *taxService) GetLatestTaxRecord(ctx context.Context, userID string, period string) (*domain.TaxRecord, error) {
	records, err := s.ListTaxRecords(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no tax record for period: %w", apperrors.ErrNotFound)
	}
	latest := records[0]
	return &latest, nil
}

func (s *taxService) Policy() domain.TaxPolicy {
	policy := s.policy
	policy.Slabs = append([]domain.Slab(nil), s.policy.Slabs...)
	return policy
}
