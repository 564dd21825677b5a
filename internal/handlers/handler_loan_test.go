package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portssvc "github.com/SscSPs/microfinance_backend/internal/core/ports/services"
	"github.com/SscSPs/microfinance_backend/internal/dto"
	"github.com/SscSPs/microfinance_backend/internal/handlers"
	"github.com/SscSPs/microfinance_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

func (m *MockLoanService) CalculateLoan(ctx context.Context, req dto.LoanTermsRequest) (*domain.LoanCalculation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanCalculation), args.Error(1)
}

func (m *MockLoanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) ListRepayments(ctx context.Context, loanID string) ([]domain.LoanRepayment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanRepayment), args.Error(1)
}

func (m *MockLoanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

// --- Mock RepaymentService ---
type MockRepaymentService struct {
	mock.Mock
}

var _ portssvc.RepaymentSvcFacade = (*MockRepaymentService)(nil)

func (m *MockRepaymentService) PostRepayment(ctx context.Context, loanID string, req dto.PostRepaymentRequest, userID string) (*domain.RepaymentResult, error) {
	args := m.Called(ctx, loanID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepaymentResult), args.Error(1)
}

func (m *MockRepaymentService) ListLoanTransactions(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---
type LoanHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	loanSvc       *MockLoanService
	repaymentSvc  *MockRepaymentService
	jwtSecret     string
	userID        string
	token         string
	isProduction  bool
	limiterCalled int
}

// generateTestToken creates a signed JWT for testing.
func (suite *LoanHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "microfinance-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = "officer-1"
	suite.token = suite.generateTestToken(suite.userID)
	suite.loanSvc = new(MockLoanService)
	suite.repaymentSvc = new(MockRepaymentService)
	suite.limiterCalled = 0
	suite.buildRouter()
}

func (suite *LoanHandlerTestSuite) buildRouter() {
	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, "microfinance-test"))
	countingLimiter := func(c *gin.Context) {
		suite.limiterCalled++
		c.Next()
	}
	handlers.RegisterLoanRoutes(v1, suite.loanSvc, suite.repaymentSvc, suite.isProduction, countingLimiter)
}

func (suite *LoanHandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func errorBody(w *httptest.ResponseRecorder) string {
	var body handlers.APIErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body.Error
}

// --- Test Cases ---

func (suite *LoanHandlerTestSuite) TestCalculateLoan_Success() {
	calc := &domain.LoanCalculation{
		LoanType:       domain.LoanTypePersonal,
		LoanAmount:     decimal.NewFromInt(1000),
		Principal:      decimal.NewFromInt(900),
		TotalInterest:  decimal.NewFromInt(100),
		TotalAmount:    decimal.NewFromInt(1000),
		MonthlyPayment: decimal.NewFromInt(300),
		Schedule: []domain.ScheduleEntry{
			{InstallmentNumber: 1, TotalPayment: decimal.NewFromInt(300), Status: domain.InstallmentPending},
		},
	}
	suite.loanSvc.On("CalculateLoan", mock.Anything, mock.MatchedBy(func(req dto.LoanTermsRequest) bool {
		return req.LoanType == domain.LoanTypePersonal && req.LoanAmount.Equal(decimal.NewFromInt(1000)) && req.TermMonths == 3
	})).Return(calc, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/loans/calculate", `{"loanType":"personal","loanAmount":"1000","termMonths":3}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoanCalculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("900.00", resp.Principal.StringFixed(2))
	suite.Len(resp.Schedule, 1)
	suite.loanSvc.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestCalculateLoan_ValidationRules() {
	cases := map[string]string{
		"missing loan type":      `{"loanAmount":"1000","termMonths":3}`,
		"unknown method":         `{"loanType":"business","loanAmount":"1000","termMonths":3,"interestMethod":"compound"}`,
		"unknown frequency":      `{"loanType":"business","loanAmount":"1000","termMonths":3,"paymentFrequency":"hourly"}`,
		"upfront above 100":      `{"loanType":"business","loanAmount":"1000","termMonths":3,"upfrontPercentage":"120"}`,
		"negative interest rate": `{"loanType":"business","loanAmount":"1000","termMonths":3,"interestRate":"-1"}`,
		"malformed json":         `{"loanType":`,
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/api/v1/loans/calculate", body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
	suite.loanSvc.AssertNotCalled(suite.T(), "CalculateLoan", mock.Anything, mock.Anything)
}

func (suite *LoanHandlerTestSuite) TestCalculateLoan_InvalidParametersFromService() {
	suite.loanSvc.On("CalculateLoan", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrInvalidLoanParameters)).Once()

	w := suite.do(http.MethodPost, "/api/v1/loans/calculate", `{"loanType":"personal","loanAmount":"0","termMonths":3}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(errorBody(w), "loan amount must be positive")
}

func (suite *LoanHandlerTestSuite) TestCreateLoan_Success() {
	loan := &domain.Loan{LoanID: "loan-1", LoanNumber: "LN-000001", ClientID: "client-1", Status: domain.LoanPending}
	suite.loanSvc.On("CreateLoan", mock.Anything, mock.MatchedBy(func(req dto.CreateLoanRequest) bool {
		return req.ClientID == "client-1" && req.LoanType == domain.LoanTypeBusiness && req.DefaultChargesPercentage != nil
	}), suite.userID).Return(loan, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/loans",
		`{"clientID":"client-1","loanType":"business","loanAmount":"10000","termMonths":12,"defaultChargesPercentage":"2"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LoanResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("LN-000001", resp.LoanNumber)
	suite.loanSvc.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestCreateLoan_MissingClient() {
	w := suite.do(http.MethodPost, "/api/v1/loans", `{"loanType":"business","loanAmount":"10000","termMonths":12}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.loanSvc.AssertNotCalled(suite.T(), "CreateLoan", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanHandlerTestSuite) TestGetLoan_NotFound() {
	suite.loanSvc.On("GetLoanByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/loans/missing", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LoanHandlerTestSuite) TestUpdateLoanStatus() {
	suite.loanSvc.On("UpdateLoanStatus", mock.Anything, "loan-1", domain.LoanDisbursed, suite.userID).
		Return(&domain.Loan{LoanID: "loan-1", Status: domain.LoanDisbursed}, nil).Once()
	suite.loanSvc.On("UpdateLoanStatus", mock.Anything, "loan-2", domain.LoanActive, suite.userID).
		Return(nil, fmt.Errorf("%w: pending -> active", apperrors.ErrInvalidStatusTransition)).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodPatch, "/api/v1/loans/loan-1/status", `{"status":"disbursed"}`).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPatch, "/api/v1/loans/loan-2/status", `{"status":"active"}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPatch, "/api/v1/loans/loan-1/status", `{"status":"archived"}`).Code)
	suite.loanSvc.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestPostRepayment_Success() {
	result := &domain.RepaymentResult{
		Installment: domain.LoanRepayment{RepaymentID: "rep-1", Status: domain.InstallmentCompleted},
		Transactions: []domain.Transaction{
			{TransactionNumber: "TXN-000001", TransactionType: domain.TxLoanPayment, Amount: decimal.NewFromInt(50)},
		},
		Loan: domain.Loan{LoanID: "loan-1", OutstandingBalance: decimal.NewFromInt(470)},
		Receipt: domain.Receipt{
			TransactionNumber:  "TXN-000001",
			ClientName:         "Amina Juma",
			Amount:             decimal.NewFromInt(50),
			OutstandingBalance: decimal.NewFromInt(470),
		},
	}
	suite.repaymentSvc.On("PostRepayment", mock.Anything, "loan-1", mock.MatchedBy(func(req dto.PostRepaymentRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(50)) && req.PaymentMethod == "mobile_money"
	}), suite.userID).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/loans/loan-1/repayments", `{"amount":"50","paymentMethod":"mobile_money"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PostRepaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("TXN-000001", resp.Receipt.TransactionNumber)
	suite.Equal("470.00", resp.Loan.OutstandingBalance.StringFixed(2))
	suite.Equal(1, suite.limiterCalled)
	suite.repaymentSvc.AssertExpectations(suite.T())
}

func (suite *LoanHandlerTestSuite) TestPostRepayment_ErrorStatuses() {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrInvalidPaymentAmount, http.StatusBadRequest},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrLoanNotPayable, http.StatusConflict},
		{apperrors.ErrNoPendingInstallment, http.StatusConflict},
		{apperrors.ErrPaymentExceedsBalance, http.StatusUnprocessableEntity},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.SetupTest()
		suite.repaymentSvc.On("PostRepayment", mock.Anything, "loan-1", mock.Anything, suite.userID).Return(nil, tc.err).Once()

		w := suite.do(http.MethodPost, "/api/v1/loans/loan-1/repayments", `{"amount":"50"}`)

		suite.Equal(tc.want, w.Code, tc.err.Error())
	}
}

func (suite *LoanHandlerTestSuite) TestInternalErrorsAreOpaqueInProduction() {
	suite.isProduction = true
	defer func() { suite.isProduction = false }()
	suite.buildRouter()
	suite.repaymentSvc.On("ListLoanTransactions", mock.Anything, "loan-1").
		Return(nil, fmt.Errorf("query failed: %w", assert.AnError)).Once()

	w := suite.do(http.MethodGet, "/api/v1/loans/loan-1/transactions", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list transactions", errorBody(w))
}

func (suite *LoanHandlerTestSuite) TestInternalErrorsIncludeDetailOutsideProduction() {
	suite.repaymentSvc.On("ListLoanTransactions", mock.Anything, "loan-1").
		Return(nil, fmt.Errorf("query failed: %w", assert.AnError)).Once()

	w := suite.do(http.MethodGet, "/api/v1/loans/loan-1/transactions", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(errorBody(w), "query failed")
}

func (suite *LoanHandlerTestSuite) TestListRepayments() {
	rows := []domain.LoanRepayment{{RepaymentID: "r1", InstallmentNumber: 1}, {RepaymentID: "r2", InstallmentNumber: 2}}
	suite.loanSvc.On("ListRepayments", mock.Anything, "loan-1").Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/loans/loan-1/repayments", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.RepaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(0, suite.limiterCalled)
}

func (suite *LoanHandlerTestSuite) TestRequiresAuthentication() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/loans/loan-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.loanSvc.AssertNotCalled(suite.T(), "GetLoanByID", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestLoanHandler(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}
