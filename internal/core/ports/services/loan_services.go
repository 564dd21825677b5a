package services

import (
	"context"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/dto"
)

// LoanCalculatorSvc defines pure loan pricing operations
type LoanCalculatorSvc interface {
	// CalculateLoan derives principal, totals and the schedule without persisting anything.
	CalculateLoan(ctx context.Context, req dto.LoanTermsRequest) (*domain.LoanCalculation, error)
}

// LoanReaderSvc defines read operations for loans
type LoanReaderSvc interface {
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)
	ListRepayments(ctx context.Context, loanID string) ([]domain.LoanRepayment, error)
}

// LoanWriterSvc defines write operations for loans
type LoanWriterSvc interface {
	// CreateLoan prices a loan and stores it together with its installment rows.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error)

	// UpdateLoanStatus applies an explicit lifecycle transition.
	UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string) (*domain.Loan, error)
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanCalculatorSvc
	LoanReaderSvc
	LoanWriterSvc
}
