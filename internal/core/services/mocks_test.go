package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/SscSPs/microfinance_backend/internal/core/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live transaction; the mocks never call through it.
type fakeTx struct {
	pgx.Tx
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

var _ portsrepo.LoanRepositoryFacade = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string, now time.Time) error {
	args := m.Called(ctx, loanID, status, userID, now)
	return args.Error(0)
}

func (m *MockLoanRepository) NextLoanNumberInTx(ctx context.Context, tx pgx.Tx) (string, error) {
	args := m.Called(ctx, tx)
	return args.String(0), args.Error(1)
}

func (m *MockLoanRepository) SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	args := m.Called(ctx, tx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) FindLoanByIDForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, tx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) UpdateLoanBalanceInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	args := m.Called(ctx, tx, loan)
	return args.Error(0)
}

// --- Mock RepaymentRepository ---
type MockRepaymentRepository struct {
	mock.Mock
}

var _ portsrepo.RepaymentRepositoryFacade = (*MockRepaymentRepository)(nil)

func (m *MockRepaymentRepository) ListRepaymentsByLoanID(ctx context.Context, loanID string) ([]domain.LoanRepayment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanRepayment), args.Error(1)
}

func (m *MockRepaymentRepository) SaveRepaymentsInTx(ctx context.Context, tx pgx.Tx, repayments []domain.LoanRepayment) error {
	args := m.Called(ctx, tx, repayments)
	return args.Error(0)
}

func (m *MockRepaymentRepository) FindEarliestPendingInstallmentForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.LoanRepayment, error) {
	args := m.Called(ctx, tx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanRepayment), args.Error(1)
}

func (m *MockRepaymentRepository) UpdateRepaymentInTx(ctx context.Context, tx pgx.Tx, repayment domain.LoanRepayment) error {
	args := m.Called(ctx, tx, repayment)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactionsByLoanID(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) NextTransactionNumbersInTx(ctx context.Context, tx pgx.Tx, count int) ([]string, error) {
	args := m.Called(ctx, tx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error {
	args := m.Called(ctx, tx, transactions)
	return args.Error(0)
}

// --- Mock SavingsAccountRepository ---
type MockSavingsRepository struct {
	mock.Mock
}

var _ portsrepo.SavingsAccountRepositoryFacade = (*MockSavingsRepository)(nil)

func (m *MockSavingsRepository) FindActiveSavingsAccountsInTx(ctx context.Context, tx pgx.Tx, clientID *string) ([]domain.SavingsAccount, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingsAccount), args.Error(1)
}

func (m *MockSavingsRepository) CreditSavingsBalancesInTx(ctx context.Context, tx pgx.Tx, credits map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, credits, userID, now)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

var _ portsrepo.NotificationRepositoryFacade = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

var _ services.EventTracker = (*MockEventTracker)(nil)

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// notificationFor matches a notification addressed to userID.
func notificationFor(userID string) any {
	return mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == userID && n.NotificationID != "" && n.Message != ""
	})
}
