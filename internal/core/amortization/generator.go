// Package amortization builds repayment schedules for the supported interest methods.
package amortization

import (
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Params describes a schedule request. AnnualRate is a percentage (12 means 12%).
type Params struct {
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	TermMonths int
	Frequency  domain.PaymentFrequency
	StartDate  time.Time
}

// Generator produces an ordered schedule for one interest method.
type Generator interface {
	Method() domain.InterestMethod
	Generate(p Params) (domain.Schedule, error)
}

// ForMethod returns the generator for an interest method.
// Anything other than flat is amortized on the declining balance.
func ForMethod(method domain.InterestMethod) Generator {
	switch method {
	case domain.InterestFlat:
		return FlatRate{}
	default:
		return DecliningBalance{}
	}
}

// GenerateRepaymentSchedule dispatches to the generator for method.
func GenerateRepaymentSchedule(p Params, method domain.InterestMethod) (domain.Schedule, error) {
	return ForMethod(method).Generate(p)
}

// DueDate advances start by installment periods of the given frequency.
func DueDate(start time.Time, frequency domain.PaymentFrequency, installment int) time.Time {
	switch frequency {
	case domain.FrequencyDaily:
		return start.AddDate(0, 0, installment)
	case domain.FrequencyWeekly:
		return start.AddDate(0, 0, 7*installment)
	case domain.FrequencyBiweekly:
		return start.AddDate(0, 0, 14*installment)
	case domain.FrequencyQuarterly:
		return start.AddDate(0, 3*installment, 0)
	case domain.FrequencyYearly, domain.FrequencyLumpSum:
		return start.AddDate(installment, 0, 0)
	default:
		return start.AddDate(0, installment, 0)
	}
}

func prepare(p Params) (int, error) {
	if err := accounting.ValidateLoanParameters(p.Principal, p.TermMonths); err != nil {
		return 0, err
	}
	return accounting.TotalInstallments(p.TermMonths, p.Frequency)
}
