package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRepayment is a row of the loan_repayments table, one per installment.
type LoanRepayment struct {
	RepaymentID       string          `db:"repayment_id"`
	LoanID            string          `db:"loan_id"`
	InstallmentNumber int             `db:"installment_number"`
	DueDate           time.Time       `db:"due_date"`
	Amount            decimal.Decimal `db:"amount"`
	PrincipalAmount   decimal.Decimal `db:"principal_amount"`
	InterestAmount    decimal.Decimal `db:"interest_amount"`
	PenaltyAmount     decimal.Decimal `db:"penalty_amount"`
	PaidAmount        decimal.Decimal `db:"paid_amount"`
	PaidPrincipal     decimal.Decimal `db:"paid_principal"`
	PaidInterest      decimal.Decimal `db:"paid_interest"`
	Status            string          `db:"status"`
	PaymentDate       *time.Time      `db:"payment_date"`   // Nullable
	PaymentMethod     *string         `db:"payment_method"` // Nullable
	TransactionID     *string         `db:"transaction_id"` // FK -> transactions, nullable
	AuditFields
}
