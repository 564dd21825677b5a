package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a loan, including its stored schedule.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// UpdateLoanStatus sets the status of a loan, stamping disbursement_date when the loan is disbursed.
	UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string, now time.Time) error
}

// LoanTransactionSupport defines loan operations that run inside a caller-owned transaction
type LoanTransactionSupport interface {
	// NextLoanNumberInTx draws the next loan number from the database sequence.
	NextLoanNumberInTx(ctx context.Context, tx pgx.Tx) (string, error)

	// SaveLoanInTx persists a new loan.
	SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error

	// FindLoanByIDForUpdate selects a loan and locks its row until the transaction ends.
	FindLoanByIDForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error)

	// UpdateLoanBalanceInTx writes outstanding_balance, total_paid and status.
	UpdateLoanBalanceInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
	LoanTransactionSupport
}

// LoanRepositoryWithTx extends LoanRepositoryFacade with transaction capabilities
type LoanRepositoryWithTx interface {
	LoanRepositoryFacade
	TransactionManager
}
