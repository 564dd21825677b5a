package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is the state of a single installment.
type InstallmentStatus string

const (
	InstallmentPending   InstallmentStatus = "pending"
	InstallmentCompleted InstallmentStatus = "completed"
	InstallmentOverdue   InstallmentStatus = "overdue"
	InstallmentPartial   InstallmentStatus = "partial"
)

// ScheduleEntry is one row of an amortization table.
// OutstandingBalance is the balance remaining after this installment.
type ScheduleEntry struct {
	InstallmentNumber  int               `json:"installment_number"`
	DueDate            time.Time         `json:"due_date"`
	PrincipalAmount    decimal.Decimal   `json:"principal_amount"`
	InterestAmount     decimal.Decimal   `json:"interest_amount"`
	TotalPayment       decimal.Decimal   `json:"total_payment"`
	OutstandingBalance decimal.Decimal   `json:"outstanding_balance"`
	Status             InstallmentStatus `json:"status"`
}

// Schedule is an ordered amortization table with its summary totals.
type Schedule struct {
	Entries        []ScheduleEntry `json:"schedule"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}
