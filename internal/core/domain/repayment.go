package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRepayment is the persisted installment row a payment is applied against.
// Amount, PrincipalAmount and InterestAmount start as the scheduled values; the
// Paid* fields track what has been collected against the row.
type LoanRepayment struct {
	RepaymentID       string            `json:"repaymentID"`
	LoanID            string            `json:"loanID"`
	InstallmentNumber int               `json:"installmentNumber"`
	DueDate           time.Time         `json:"dueDate"`
	Amount            decimal.Decimal   `json:"amount"`
	PrincipalAmount   decimal.Decimal   `json:"principalAmount"`
	InterestAmount    decimal.Decimal   `json:"interestAmount"`
	PenaltyAmount     decimal.Decimal   `json:"penaltyAmount"`
	PaidAmount        decimal.Decimal   `json:"paidAmount"`
	PaidPrincipal     decimal.Decimal   `json:"paidPrincipal"`
	PaidInterest      decimal.Decimal   `json:"paidInterest"`
	Status            InstallmentStatus `json:"status"`
	PaymentDate       *time.Time        `json:"paymentDate,omitempty"`
	PaymentMethod     string            `json:"paymentMethod,omitempty"`
	TransactionID     *string           `json:"transactionID,omitempty"`
	AuditFields
}

// Receipt is the printable summary of a posted payment.
type Receipt struct {
	TransactionNumber  string          `json:"transactionNumber"`
	ClientName         string          `json:"clientName"`
	LoanNumber         string          `json:"loanNumber"`
	InstallmentNumber  int             `json:"installmentNumber"`
	Amount             decimal.Decimal `json:"amount"`
	PrincipalPortion   decimal.Decimal `json:"principalPortion"`
	InterestPortion    decimal.Decimal `json:"interestPortion"`
	PenaltyPortion     decimal.Decimal `json:"penaltyPortion"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	PaymentDate        time.Time       `json:"paymentDate"`
	PaymentMethod      string          `json:"paymentMethod"`
}

// RepaymentResult is everything a posted payment changed.
type RepaymentResult struct {
	Installment  LoanRepayment `json:"installment"`
	Transactions []Transaction `json:"transactions"`
	Loan         Loan          `json:"loan"`
	Receipt      Receipt       `json:"receipt"`
}
