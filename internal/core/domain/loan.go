package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanPending   LoanStatus = "pending"
	LoanApproved  LoanStatus = "approved"
	LoanDisbursed LoanStatus = "disbursed"
	LoanActive    LoanStatus = "active"
	LoanOverdue   LoanStatus = "overdue"
	LoanCompleted LoanStatus = "completed"
	LoanCancelled LoanStatus = "cancelled"
	LoanDefaulted LoanStatus = "defaulted"
)

var loanTransitions = map[LoanStatus][]LoanStatus{
	LoanPending:   {LoanApproved, LoanCancelled},
	LoanApproved:  {LoanDisbursed, LoanCancelled},
	LoanDisbursed: {LoanActive, LoanCancelled},
	LoanActive:    {LoanOverdue, LoanCompleted, LoanDefaulted},
	LoanOverdue:   {LoanActive, LoanCompleted, LoanDefaulted},
}

// CanTransitionTo reports whether an explicit status change from s to next is allowed.
// Terminal states (completed, cancelled, defaulted) allow nothing.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	for _, allowed := range loanTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsPayable reports whether repayments may be posted against a loan in this status.
func (s LoanStatus) IsPayable() bool {
	return s == LoanActive || s == LoanDisbursed
}

// ParseLoanStatus validates a raw status string.
func ParseLoanStatus(raw string) (LoanStatus, error) {
	switch s := LoanStatus(raw); s {
	case LoanPending, LoanApproved, LoanDisbursed, LoanActive, LoanOverdue, LoanCompleted, LoanCancelled, LoanDefaulted:
		return s, nil
	}
	return "", fmt.Errorf("unknown loan status %q", raw)
}

// InterestMethod selects the amortization algorithm.
type InterestMethod string

const (
	InterestFlat             InterestMethod = "flat"
	InterestDecliningBalance InterestMethod = "declining_balance"
)

// ParseInterestMethod maps a raw method name to an InterestMethod.
// Empty or unknown names resolve to declining balance.
func ParseInterestMethod(raw string) InterestMethod {
	if InterestMethod(raw) == InterestFlat {
		return InterestFlat
	}
	return InterestDecliningBalance
}

// PaymentFrequency is how often installments fall due.
type PaymentFrequency string

const (
	FrequencyDaily     PaymentFrequency = "daily"
	FrequencyWeekly    PaymentFrequency = "weekly"
	FrequencyBiweekly  PaymentFrequency = "biweekly"
	FrequencyMonthly   PaymentFrequency = "monthly"
	FrequencyQuarterly PaymentFrequency = "quarterly"
	FrequencyYearly    PaymentFrequency = "yearly"
	// FrequencyLumpSum is accepted on input and scheduled as yearly.
	FrequencyLumpSum PaymentFrequency = "lump_sum"
)

// Loan is the loan aggregate as read and written by the calculation core.
type Loan struct {
	LoanID                   string           `json:"loanID"`
	LoanNumber               string           `json:"loanNumber"`
	ClientID                 string           `json:"clientID"`
	LoanType                 LoanType         `json:"loanType"`
	Amount                   decimal.Decimal  `json:"amount"`
	PrincipalAmount          decimal.Decimal  `json:"principalAmount"`
	InterestRate             decimal.Decimal  `json:"interestRate"`
	TermMonths               int              `json:"termMonths"`
	InterestMethod           InterestMethod   `json:"interestMethod"`
	PaymentFrequency         PaymentFrequency `json:"paymentFrequency"`
	UpfrontPercentage        decimal.Decimal  `json:"upfrontPercentage"`
	UpfrontAmount            decimal.Decimal  `json:"upfrontAmount"`
	DefaultChargesPercentage decimal.Decimal  `json:"defaultChargesPercentage"`
	DefaultChargesAmount     decimal.Decimal  `json:"defaultChargesAmount"`
	OutstandingBalance       decimal.Decimal  `json:"outstandingBalance"`
	TotalPaid                decimal.Decimal  `json:"totalPaid"`
	TotalInterest            decimal.Decimal  `json:"totalInterest"`
	TotalAmount              decimal.Decimal  `json:"totalAmount"`
	MonthlyPayment           decimal.Decimal  `json:"monthlyPayment"`
	Status                   LoanStatus       `json:"status"`
	DisbursementDate         *time.Time       `json:"disbursementDate,omitempty"`
	RepaymentSchedule        []ScheduleEntry  `json:"repaymentSchedule"`
	AuditFields
}
