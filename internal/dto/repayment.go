package dto

import (
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostRepaymentRequest defines a payment against a loan.
type PostRepaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   *time.Time      `json:"paymentDate"` // defaults to now
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,max=50"`
}

// RepaymentResponse defines the data returned for an installment row.
type RepaymentResponse struct {
	RepaymentID       string                   `json:"repaymentID"`
	LoanID            string                   `json:"loanID"`
	InstallmentNumber int                      `json:"installmentNumber"`
	DueDate           time.Time                `json:"dueDate"`
	Amount            decimal.Decimal          `json:"amount"`
	PrincipalAmount   decimal.Decimal          `json:"principalAmount"`
	InterestAmount    decimal.Decimal          `json:"interestAmount"`
	PenaltyAmount     decimal.Decimal          `json:"penaltyAmount"`
	PaidAmount        decimal.Decimal          `json:"paidAmount"`
	Status            domain.InstallmentStatus `json:"status"`
	PaymentDate       *time.Time               `json:"paymentDate,omitempty"`
	PaymentMethod     string                   `json:"paymentMethod,omitempty"`
	TransactionID     *string                  `json:"transactionID,omitempty"`
}

// TransactionResponse defines the data returned for a ledger row.
type TransactionResponse struct {
	TransactionID     string                 `json:"transactionID"`
	TransactionNumber string                 `json:"transactionNumber"`
	Type              domain.TransactionType `json:"type"`
	Amount            decimal.Decimal        `json:"amount"`
	LoanID            *string                `json:"loanID,omitempty"`
	ClientID          *string                `json:"clientID,omitempty"`
	SavingsAccountID  *string                `json:"savingsAccountID,omitempty"`
	PaymentMethod     string                 `json:"paymentMethod,omitempty"`
	Description       string                 `json:"description"`
	TransactionDate   time.Time              `json:"transactionDate"`
}

// PostRepaymentResponse is returned after a payment has been applied.
type PostRepaymentResponse struct {
	Installment  RepaymentResponse     `json:"installment"`
	Transactions []TransactionResponse `json:"transactions"`
	Loan         LoanResponse          `json:"loan"`
	Receipt      domain.Receipt        `json:"receipt"`
}

// ToRepaymentResponse converts a domain.LoanRepayment to RepaymentResponse DTO
func ToRepaymentResponse(r *domain.LoanRepayment) RepaymentResponse {
	return RepaymentResponse{
		RepaymentID:       r.RepaymentID,
		LoanID:            r.LoanID,
		InstallmentNumber: r.InstallmentNumber,
		DueDate:           r.DueDate,
		Amount:            r.Amount,
		PrincipalAmount:   r.PrincipalAmount,
		InterestAmount:    r.InterestAmount,
		PenaltyAmount:     r.PenaltyAmount,
		PaidAmount:        r.PaidAmount,
		Status:            r.Status,
		PaymentDate:       r.PaymentDate,
		PaymentMethod:     r.PaymentMethod,
		TransactionID:     r.TransactionID,
	}
}

// ToListRepaymentResponse converts a slice of installments to DTOs
func ToListRepaymentResponse(rows []domain.LoanRepayment) []RepaymentResponse {
	res := make([]RepaymentResponse, len(rows))
	for i := range rows {
		res[i] = ToRepaymentResponse(&rows[i])
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		TransactionNumber: txn.TransactionNumber,
		Type:              txn.TransactionType,
		Amount:            txn.Amount,
		LoanID:            txn.LoanID,
		ClientID:          txn.ClientID,
		SavingsAccountID:  txn.SavingsAccountID,
		PaymentMethod:     txn.PaymentMethod,
		Description:       txn.Description,
		TransactionDate:   txn.TransactionDate,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToPostRepaymentResponse converts a domain.RepaymentResult to its DTO
func ToPostRepaymentResponse(result *domain.RepaymentResult) PostRepaymentResponse {
	return PostRepaymentResponse{
		Installment:  ToRepaymentResponse(&result.Installment),
		Transactions: ToListTransactionResponse(result.Transactions),
		Loan:         ToLoanResponse(&result.Loan),
		Receipt:      result.Receipt,
	}
}
