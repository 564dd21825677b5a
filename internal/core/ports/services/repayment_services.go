package services

import (
	"context"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/dto"
)

// RepaymentWriterSvc posts payments against loans
type RepaymentWriterSvc interface {
	// PostRepayment applies a payment to the loan's earliest open installment and distributes its interest.
	PostRepayment(ctx context.Context, loanID string, req dto.PostRepaymentRequest, userID string) (*domain.RepaymentResult, error)
}

// RepaymentReaderSvc exposes the ledger rows produced by repayments
type RepaymentReaderSvc interface {
	ListLoanTransactions(ctx context.Context, loanID string) ([]domain.Transaction, error)
}

// RepaymentSvcFacade combines all repayment-related service interfaces
type RepaymentSvcFacade interface {
	RepaymentWriterSvc
	RepaymentReaderSvc
}
