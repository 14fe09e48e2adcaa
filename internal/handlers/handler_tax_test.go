package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/tax_liability_app/internal/apperrors"
	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_liability_app/internal/core/ports/services"
	"github.com/SscSPs/tax_liability_app/internal/dto"
	"github.com/SscSPs/tax_liability_app/internal/handlers"
	"github.com/SscSPs/tax_liability_app/internal/middleware"
	"github.com/SscSPs/tax_liability_app/internal/platform/config"
	"github.com/SscSPs/tax_liability_app/internal/utils/taxation"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TaxService ---
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) ComputeTax(ctx context.Context, userID string, accountID string) (*domain.TaxResult, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxResult), args.Error(1)
}

func (m *MockTaxService) BuildForm(ctx context.Context, userID string, accountID string) (*domain.FormSummary, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormSummary), args.Error(1)
}

func (m *MockTaxService) ListTaxRecords(ctx context.Context, userID string, period string) ([]domain.TaxRecord, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRecord), args.Error(1)
}

func (m *MockTaxService) GetLatestTaxRecord(ctx context.Context, userID string, period string) (*domain.TaxRecord, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRecord), args.Error(1)
}

func (m *MockTaxService) Policy() domain.TaxPolicy {
	args := m.Called()
	return args.Get(0).(domain.TaxPolicy)
}

// Ensure mock implements the interface
var _ portssvc.TaxSvcFacade = (*MockTaxService)(nil)

// --- Test Suite ---

type TaxHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockTaxService *MockTaxService
	jwtSecret      string
	userID         string
	accountID      string
}

func (suite *TaxHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tax-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TaxHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTaxService = new(MockTaxService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTaxRoutes(v1, suite.mockTaxService)
}

func (suite *TaxHandlerTestSuite) do(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TaxHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Test Cases ---

func (suite *TaxHandlerTestSuite) TestCalculateTax_Success() {
	result := &domain.TaxResult{
		TaxRecordID:   uuid.NewString(),
		Period:        "2024-25",
		TotalIncome:   decimal.NewFromInt(600000),
		Deductions:    decimal.NewFromInt(10000),
		TaxableIncome: decimal.NewFromInt(590000),
		TaxLiability:  decimal.NewFromInt(15080),
		SlabTax:       decimal.NewFromInt(14500),
		Cess:          decimal.NewFromInt(580),
		Diagnostics: []domain.Diagnostic{
			{Kind: domain.MalformedDescription, RecordID: "t9", Reason: "bad"},
		},
	}
	suite.mockTaxService.On("ComputeTax", mock.Anything, suite.userID, suite.accountID).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax/calculate?bankAccountId="+suite.accountID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TaxCalculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(result.TaxRecordID, body.TaxRecordID)
	suite.Equal("2024-25", body.FinancialYear)
	suite.True(body.TaxLiability.Equal(decimal.NewFromInt(15080)))
	suite.True(body.TaxableIncome.Equal(decimal.NewFromInt(590000)))
	suite.Require().Len(body.Diagnostics, 1)
	suite.Equal("MALFORMED_DESCRIPTION", body.Diagnostics[0].Kind)
	suite.mockTaxService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestCalculateTax_MissingBankAccountID() {
	w := suite.do(http.MethodPost, "/api/v1/tax/calculate")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Bank account ID is required", suite.decodeError(w)["error"])
	suite.mockTaxService.AssertNotCalled(suite.T(), "ComputeTax", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaxHandlerTestSuite) TestCalculateTax_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not found", fmt.Errorf("bank account x: %w", apperrors.ErrNotFound), http.StatusNotFound, "bank account x: resource not found"},
		{"validation", fmt.Errorf("%w: bank account id is required", apperrors.ErrValidation), http.StatusBadRequest, "validation error: bank account id is required"},
		{"persistence", fmt.Errorf("%w: %w", apperrors.ErrPersistence, assert.AnError), http.StatusInternalServerError, "Tax computed but the record was not saved"},
		{"computation", fmt.Errorf("%w: %w", apperrors.ErrComputation, taxation.ErrInvalidPolicy), http.StatusInternalServerError, "Error calculating tax"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.mockTaxService.On("ComputeTax", mock.Anything, suite.userID, suite.accountID).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/tax/calculate?bankAccountId="+suite.accountID)

			suite.Equal(tt.wantStatus, w.Code)
			suite.Equal(tt.wantError, suite.decodeError(w)["error"])
			suite.mockTaxService.AssertExpectations(suite.T())
		})
	}
}

func (suite *TaxHandlerTestSuite) TestCalculateTax_Unauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tax/calculate?bankAccountId="+suite.accountID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTaxService.AssertNotCalled(suite.T(), "ComputeTax", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaxHandlerTestSuite) TestGetTaxForm_Success() {
	form := &domain.FormSummary{
		Period:                     "2024-25",
		DisplayName:                "Unknown User",
		IdentityDocument:           "ABCDE1234F",
		AccountName:                "Salary Account",
		TotalIncome:                decimal.NewFromInt(600100),
		IncomeFromSalaryEquivalent: decimal.NewFromInt(600000),
		IncomeFromCapitalGains:     decimal.NewFromInt(100),
		Deductions:                 decimal.NewFromInt(10000),
		TaxableIncome:              decimal.NewFromInt(590100),
	}
	suite.mockTaxService.On("BuildForm", mock.Anything, suite.userID, suite.accountID).Return(form, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tax/form?bankAccountId="+suite.accountID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TaxFormResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Unknown User", body.Name)
	suite.Equal("ABCDE1234F", body.PAN)
	suite.Equal("Salary Account", body.BankAccountName)
	suite.True(body.IncomeFromSalary.Equal(decimal.NewFromInt(600000)))
	suite.True(body.IncomeFromCapitalGains.Equal(decimal.NewFromInt(100)))
	suite.NotNil(body.Diagnostics)
	suite.mockTaxService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestGetTaxForm_UserNotFound() {
	suite.mockTaxService.On("BuildForm", mock.Anything, suite.userID, suite.accountID).
		Return(nil, fmt.Errorf("user profile: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/tax/form?bankAccountId="+suite.accountID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTaxService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestListTaxRecords() {
	records := []domain.TaxRecord{
		{TaxRecordID: "r2", AccountID: suite.accountID, Period: "2023-24", TaxLiability: decimal.NewFromInt(10)},
		{TaxRecordID: "r1", AccountID: suite.accountID, Period: "2023-24", TaxLiability: decimal.NewFromInt(10)},
	}
	suite.mockTaxService.On("ListTaxRecords", mock.Anything, suite.userID, "2023-24").Return(records, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tax/records?financialYear=2023-24")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.TaxRecordResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("r2", body[0].TaxRecordID)
	suite.Equal(suite.accountID, body[0].BankAccountID)
	suite.mockTaxService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestListTaxRecords_InvalidYear() {
	suite.mockTaxService.On("ListTaxRecords", mock.Anything, suite.userID, "2023").
		Return(nil, fmt.Errorf("%w: invalid financial year format", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/tax/records?financialYear=2023")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTaxService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestGetLatestTaxRecord_NotFound() {
	suite.mockTaxService.On("GetLatestTaxRecord", mock.Anything, suite.userID, "").
		Return(nil, fmt.Errorf("no tax record for period: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/tax/records/latest")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTaxService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestGetTaxPolicy() {
	suite.mockTaxService.On("Policy").Return(taxation.DefaultPolicy()).Once()

	w := suite.do(http.MethodGet, "/api/v1/tax/policy")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TaxPolicyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-25", body.FinancialYear)
	suite.Require().Len(body.Slabs, 6)
	suite.Nil(body.Slabs[5].UpperBound)
	suite.True(body.Slabs[2].BaseTax.Equal(decimal.NewFromInt(15000)))
	suite.True(body.Slabs[5].BaseTax.Equal(decimal.NewFromInt(150000)))
	suite.mockTaxService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTaxHandler(t *testing.T) {
	suite.Run(t, new(TaxHandlerTestSuite))
}

func TestRegisterRoutes_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{JWTSecret: "secret", IsProduction: true}
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{Tax: new(MockTaxService)}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/tax/policy", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
