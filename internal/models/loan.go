package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a row of the loans table.
// RepaymentSchedule holds the JSONB snapshot written at origination.
type Loan struct {
	LoanID                   string          `db:"loan_id"`
	LoanNumber               string          `db:"loan_number"`
	ClientID                 string          `db:"client_id"`
	LoanType                 string          `db:"loan_type"`
	Amount                   decimal.Decimal `db:"amount"`
	PrincipalAmount          decimal.Decimal `db:"principal_amount"`
	InterestRate             decimal.Decimal `db:"interest_rate"`
	TermMonths               int             `db:"term_months"`
	InterestMethod           string          `db:"interest_method"`
	PaymentFrequency         string          `db:"payment_frequency"`
	UpfrontPercentage        decimal.Decimal `db:"upfront_percentage"`
	UpfrontAmount            decimal.Decimal `db:"upfront_amount"`
	DefaultChargesPercentage decimal.Decimal `db:"default_charges_percentage"`
	DefaultChargesAmount     decimal.Decimal `db:"default_charges_amount"`
	OutstandingBalance       decimal.Decimal `db:"outstanding_balance"`
	TotalPaid                decimal.Decimal `db:"total_paid"`
	TotalInterest            decimal.Decimal `db:"total_interest"`
	TotalAmount              decimal.Decimal `db:"total_amount"`
	MonthlyPayment           decimal.Decimal `db:"monthly_payment"`
	Status                   string          `db:"status"`
	DisbursementDate         *time.Time      `db:"disbursement_date"` // Nullable
	RepaymentSchedule        []byte          `db:"repayment_schedule"`
	AuditFields
}
