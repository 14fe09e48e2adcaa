package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/tax_liability_app/internal/apperrors"
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_liability_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_liability_app/internal/core/ports/services"
	"github.com/SscSPs/tax_liability_app/internal/core/services"
	"github.com/SscSPs/tax_liability_app/internal/utils/taxation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mocks ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByIDAndOwner(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsByOwnerAndAccount(ctx context.Context, userID string, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockHoldingRepository struct {
	mock.Mock
}

func (m *MockHoldingRepository) FindHoldingsByOwnerAndSymbols(ctx context.Context, userID string, symbols []string, accountID string) ([]domain.Holding, error) {
	args := m.Called(ctx, userID, symbols, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holding), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTaxRecordRepository struct {
	mock.Mock
}

func (m *MockTaxRecordRepository) SaveTaxRecord(ctx context.Context, record domain.TaxRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTaxRecordRepository) ListTaxRecordsByOwner(ctx context.Context, userID string, period string) ([]domain.TaxRecord, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRecord), args.Error(1)
}

// --- Test Suite Setup ---

type TaxServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	userID          string
	accountID       string
	fixedNow        time.Time
	accountRepo     *MockAccountRepository
	transactionRepo *MockTransactionRepository
	holdingRepo     *MockHoldingRepository
	userRepo        *MockUserRepository
	recordRepo      *MockTaxRecordRepository
	service         portssvc.TaxSvcFacade
}

func (suite *TaxServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
	suite.fixedNow = time.Date(2024, time.November, 5, 10, 0, 0, 0, time.UTC)

	suite.accountRepo = new(MockAccountRepository)
	suite.transactionRepo = new(MockTransactionRepository)
	suite.holdingRepo = new(MockHoldingRepository)
	suite.userRepo = new(MockUserRepository)
	suite.recordRepo = new(MockTaxRecordRepository)
	suite.service = suite.newService(taxation.DefaultPolicy())
}

func (suite *TaxServiceTestSuite) newService(policy domain.TaxPolicy) portssvc.TaxSvcFacade {
	return services.NewTaxService(
		portsrepo.RepositoryProvider{
			AccountRepo:     suite.accountRepo,
			TransactionRepo: suite.transactionRepo,
			HoldingRepo:     suite.holdingRepo,
			UserRepo:        suite.userRepo,
			TaxRecordRepo:   suite.recordRepo,
		},
		services.WithTaxPolicy(policy),
		services.WithClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *TaxServiceTestSuite) assertExpectations() {
	suite.accountRepo.AssertExpectations(suite.T())
	suite.transactionRepo.AssertExpectations(suite.T())
	suite.holdingRepo.AssertExpectations(suite.T())
	suite.userRepo.AssertExpectations(suite.T())
	suite.recordRepo.AssertExpectations(suite.T())
}

func (suite *TaxServiceTestSuite) account(monthlyIncome string) *domain.Account {
	acc := &domain.Account{AccountID: suite.accountID, UserID: suite.userID, Name: "Salary Account"}
	if monthlyIncome != "" {
		acc.MonthlyIncome = decimal.NewNullDecimal(decimal.RequireFromString(monthlyIncome))
	}
	return acc
}

func (suite *TaxServiceTestSuite) decimalEqual(want string, got decimal.Decimal) {
	suite.Truef(decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

// --- Test Cases ---

func (suite *TaxServiceTestSuite) TestComputeTax_SalaryOnly() {
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return([]domain.Transaction{}, nil).Once()

	var saved domain.TaxRecord
	suite.recordRepo.On("SaveTaxRecord", suite.ctx, mock.AnythingOfType("domain.TaxRecord")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.TaxRecord) }).
		Return(nil).Once()

	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.decimalEqual("600000", result.TotalIncome)
	suite.decimalEqual("10000", result.Deductions)
	suite.decimalEqual("590000", result.TaxableIncome)
	suite.decimalEqual("15080", result.TaxLiability)
	suite.decimalEqual("0", result.CapitalGainsTax)
	suite.Equal("2024-25", result.Period)

	suite.Equal(result.TaxRecordID, saved.TaxRecordID)
	suite.Equal(suite.userID, saved.UserID)
	suite.Equal(suite.accountID, saved.AccountID)
	suite.Equal("2024-25", saved.Period)
	suite.Equal(suite.fixedNow, saved.CreatedAt)
	suite.True(result.TaxLiability.Equal(saved.TaxLiability))

	// No stock purchases, so holdings are never fetched.
	suite.holdingRepo.AssertNotCalled(suite.T(), "FindHoldingsByOwnerAndSymbols", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_LowIncomeOwesNothing() {
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("500"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return([]domain.Transaction{}, nil).Once()
	suite.recordRepo.On("SaveTaxRecord", suite.ctx, mock.AnythingOfType("domain.TaxRecord")).Return(nil).Once()

	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().NoError(err)
	suite.decimalEqual("6000", result.TotalIncome)
	suite.decimalEqual("0", result.TaxableIncome)
	suite.decimalEqual("0", result.TaxLiability)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_CapitalGainsOnly() {
	transactions := []domain.Transaction{
		{TransactionID: "t1", Category: domain.CategoryStockPurchase, Description: "Stock Purchase: Acme Corp (ACME)", Amount: decimal.NewFromInt(1000)},
	}
	holdings := []domain.Holding{
		{
			HoldingID:     "h1",
			UserID:        suite.userID,
			Symbol:        "ACME",
			PurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(100)),
			Quantity:      decimal.NewNullDecimal(decimal.NewFromInt(10)),
		},
	}

	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account(""), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return(transactions, nil).Once()
	suite.holdingRepo.On("FindHoldingsByOwnerAndSymbols", suite.ctx, suite.userID, []string{"ACME"}, "").Return(holdings, nil).Once()
	suite.recordRepo.On("SaveTaxRecord", suite.ctx, mock.AnythingOfType("domain.TaxRecord")).Return(nil).Once()

	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().NoError(err)
	suite.decimalEqual("100", result.CapitalGains)
	suite.decimalEqual("15", result.CapitalGainsTax)
	suite.decimalEqual("15.6", result.TaxLiability)
	suite.Empty(result.Diagnostics)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_AccountScopedHoldingsQuery() {
	policy := taxation.DefaultPolicy()
	policy.HoldingsScope = domain.HoldingsScopeAccount
	service := suite.newService(policy)

	transactions := []domain.Transaction{
		{TransactionID: "t1", Category: domain.CategoryStockPurchase, Symbol: "ACME"},
	}
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("1000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return(transactions, nil).Once()
	suite.holdingRepo.On("FindHoldingsByOwnerAndSymbols", suite.ctx, suite.userID, []string{"ACME"}, suite.accountID).Return([]domain.Holding{}, nil).Once()
	suite.recordRepo.On("SaveTaxRecord", suite.ctx, mock.AnythingOfType("domain.TaxRecord")).Return(nil).Once()

	_, err := service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().NoError(err)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_ReturnsDiagnostics() {
	transactions := []domain.Transaction{
		{TransactionID: "bad-desc", Category: domain.CategoryStockPurchase, Description: "bought shares"},
		{TransactionID: "t2", Category: domain.CategoryStockPurchase, Description: "Stock Purchase: Acme (ACME)"},
	}
	holdings := []domain.Holding{
		{HoldingID: "no-qty", Symbol: "ACME", PurchasePrice: decimal.NewNullDecimal(decimal.NewFromInt(10))},
	}

	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return(transactions, nil).Once()
	suite.holdingRepo.On("FindHoldingsByOwnerAndSymbols", suite.ctx, suite.userID, []string{"ACME"}, "").Return(holdings, nil).Once()
	suite.recordRepo.On("SaveTaxRecord", suite.ctx, mock.AnythingOfType("domain.TaxRecord")).Return(nil).Once()

	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().NoError(err)
	suite.Require().Len(result.Diagnostics, 2)
	suite.Equal(domain.MalformedDescription, result.Diagnostics[0].Kind)
	suite.Equal("bad-desc", result.Diagnostics[0].RecordID)
	suite.Equal(domain.IncompleteHolding, result.Diagnostics[1].Kind)
	suite.decimalEqual("15080", result.TaxLiability)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_TwoCallsAppendTwoRecords() {
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Twice()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return([]domain.Transaction{}, nil).Twice()

	var saved []domain.TaxRecord
	suite.recordRepo.On("SaveTaxRecord", suite.ctx, mock.AnythingOfType("domain.TaxRecord")).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(domain.TaxRecord)) }).
		Return(nil).Twice()

	first, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)
	suite.Require().NoError(err)
	second, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)
	suite.Require().NoError(err)

	suite.Require().Len(saved, 2)
	suite.NotEqual(saved[0].TaxRecordID, saved[1].TaxRecordID)
	suite.NotEqual(first.TaxRecordID, second.TaxRecordID)
	suite.True(saved[0].TaxLiability.Equal(saved[1].TaxLiability))
	suite.True(saved[0].TaxableIncome.Equal(saved[1].TaxableIncome))
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_EmptyAccountID() {
	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, "  ")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountByIDAndOwner", mock.Anything, mock.Anything, mock.Anything)
	suite.recordRepo.AssertNotCalled(suite.T(), "SaveTaxRecord", mock.Anything, mock.Anything)
}

func (suite *TaxServiceTestSuite) TestComputeTax_AccountNotFound() {
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.transactionRepo.AssertNotCalled(suite.T(), "ListTransactionsByOwnerAndAccount", mock.Anything, mock.Anything, mock.Anything)
	suite.recordRepo.AssertNotCalled(suite.T(), "SaveTaxRecord", mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_RepoError() {
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return(nil, assert.AnError).Once()

	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
	suite.recordRepo.AssertNotCalled(suite.T(), "SaveTaxRecord", mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_PersistenceFailure() {
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return([]domain.Transaction{}, nil).Once()
	suite.recordRepo.On("SaveTaxRecord", suite.ctx, mock.AnythingOfType("domain.TaxRecord")).Return(assert.AnError).Once()

	result, err := suite.service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.ErrorIs(err, assert.AnError)
	suite.Contains(err.Error(), "not saved")
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestComputeTax_InvalidPolicy() {
	policy := taxation.DefaultPolicy()
	policy.CessRate = decimal.NewFromInt(2)
	service := suite.newService(policy)

	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return([]domain.Transaction{}, nil).Once()

	result, err := service.ComputeTax(suite.ctx, suite.userID, suite.accountID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrComputation)
	suite.ErrorIs(err, taxation.ErrInvalidPolicy)
	suite.recordRepo.AssertNotCalled(suite.T(), "SaveTaxRecord", mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestBuildForm_Success() {
	transactions := []domain.Transaction{
		{TransactionID: "rent", Category: domain.CategoryHousing, Amount: decimal.NewFromInt(20000)},
	}
	suite.userRepo.On("FindUserByID", suite.ctx, suite.userID).Return(&domain.User{UserID: suite.userID, Name: "Asha Rao"}, nil).Once()
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return(transactions, nil).Once()

	form, err := suite.service.BuildForm(suite.ctx, suite.userID, suite.accountID)

	suite.Require().NoError(err)
	suite.Require().NotNil(form)
	suite.Equal("Asha Rao", form.DisplayName)
	suite.Equal("ABCDE1234F", form.IdentityDocument)
	suite.Equal("Salary Account", form.AccountName)
	suite.Equal("2024-25", form.Period)
	suite.decimalEqual("600000", form.TotalIncome)
	suite.decimalEqual("600000", form.IncomeFromSalaryEquivalent)
	suite.decimalEqual("0", form.IncomeFromCapitalGains)
	suite.decimalEqual("30000", form.Deductions)
	suite.decimalEqual("570000", form.TaxableIncome)

	// Forms are never persisted.
	suite.recordRepo.AssertNotCalled(suite.T(), "SaveTaxRecord", mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestBuildForm_UnnamedUser() {
	suite.userRepo.On("FindUserByID", suite.ctx, suite.userID).Return(&domain.User{UserID: suite.userID}, nil).Once()
	suite.accountRepo.On("FindAccountByIDAndOwner", suite.ctx, suite.accountID, suite.userID).Return(suite.account("50000"), nil).Once()
	suite.transactionRepo.On("ListTransactionsByOwnerAndAccount", suite.ctx, suite.userID, suite.accountID).Return([]domain.Transaction{}, nil).Once()

	form, err := suite.service.BuildForm(suite.ctx, suite.userID, suite.accountID)

	suite.Require().NoError(err)
	suite.Equal("Unknown User", form.DisplayName)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestBuildForm_UserNotFound() {
	suite.userRepo.On("FindUserByID", suite.ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	form, err := suite.service.BuildForm(suite.ctx, suite.userID, suite.accountID)

	suite.Require().Error(err)
	suite.Nil(form)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountByIDAndOwner", mock.Anything, mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestBuildForm_EmptyAccountID() {
	form, err := suite.service.BuildForm(suite.ctx, suite.userID, "")

	suite.Require().Error(err)
	suite.Nil(form)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.userRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *TaxServiceTestSuite) TestListTaxRecords_DefaultsToPolicyPeriod() {
	records := []domain.TaxRecord{{TaxRecordID: "newer"}, {TaxRecordID: "older"}}
	suite.recordRepo.On("ListTaxRecordsByOwner", suite.ctx, suite.userID, "2024-25").Return(records, nil).Once()

	got, err := suite.service.ListTaxRecords(suite.ctx, suite.userID, "")

	suite.Require().NoError(err)
	suite.Equal(records, got)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestListTaxRecords_InvalidPeriod() {
	got, err := suite.service.ListTaxRecords(suite.ctx, suite.userID, "2024-2025")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.recordRepo.AssertNotCalled(suite.T(), "ListTaxRecordsByOwner", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaxServiceTestSuite) TestGetLatestTaxRecord() {
	records := []domain.TaxRecord{{TaxRecordID: "newer"}, {TaxRecordID: "older"}}
	suite.recordRepo.On("ListTaxRecordsByOwner", suite.ctx, suite.userID, "2023-24").Return(records, nil).Once()

	got, err := suite.service.GetLatestTaxRecord(suite.ctx, suite.userID, "2023-24")

	suite.Require().NoError(err)
	suite.Equal("newer", got.TaxRecordID)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestGetLatestTaxRecord_NotFound() {
	suite.recordRepo.On("ListTaxRecordsByOwner", suite.ctx, suite.userID, "2024-25").Return([]domain.TaxRecord{}, nil).Once()

	got, err := suite.service.GetLatestTaxRecord(suite.ctx, suite.userID, "")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.assertExpectations()
}

func (suite *TaxServiceTestSuite) TestPolicy_ReturnsCopy() {
	policy := suite.service.Policy()
	policy.Slabs[0].Rate = decimal.NewFromInt(1)

	suite.True(suite.service.Policy().Slabs[0].Rate.IsZero())
}

// --- Run Test Suite ---

func TestTaxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}
