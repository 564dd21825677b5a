package repositories

import (
	"context"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RepaymentReader defines read operations for installment rows
type RepaymentReader interface {
	// ListRepaymentsByLoanID returns a loan's installments ordered by installment number.
	ListRepaymentsByLoanID(ctx context.Context, loanID string) ([]domain.LoanRepayment, error)
}

// RepaymentTransactionSupport defines installment operations that run inside a caller-owned transaction
type RepaymentTransactionSupport interface {
	// SaveRepaymentsInTx bulk-inserts installment rows.
	SaveRepaymentsInTx(ctx context.Context, tx pgx.Tx, repayments []domain.LoanRepayment) error

	// FindEarliestPendingInstallmentForUpdate returns the first pending or partial installment
	// by (due_date, installment_number) and locks it. Returns apperrors.ErrNotFound when none is left.
	FindEarliestPendingInstallmentForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.LoanRepayment, error)

	// UpdateRepaymentInTx writes the amount, paid and status columns of an installment.
	UpdateRepaymentInTx(ctx context.Context, tx pgx.Tx, repayment domain.LoanRepayment) error
}

// RepaymentRepositoryFacade combines all installment-related repository interfaces
type RepaymentRepositoryFacade interface {
	RepaymentReader
	RepaymentTransactionSupport
}
