package accounting

import (
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// rateEpsilon is the periodic rate at or below which a loan is amortized by simple division.
	rateEpsilon = decimal.New(1, -8)

	// factorPrecision bounds the digits kept while raising (1+r) to the n-th power.
	factorPrecision int32 = 20
)

// RoundingEpsilon is the tolerance under which a balance counts as fully paid.
var RoundingEpsilon = decimal.RequireFromString("0.01")

// PeriodsPerYear returns the number of installments a frequency produces in a year.
// Unknown frequencies fall back to monthly.
func PeriodsPerYear(frequency domain.PaymentFrequency) int {
	switch frequency {
	case domain.FrequencyDaily:
		return 365
	case domain.FrequencyWeekly:
		return 52
	case domain.FrequencyBiweekly:
		return 26
	case domain.FrequencyMonthly:
		return 12
	case domain.FrequencyQuarterly:
		return 4
	case domain.FrequencyYearly, domain.FrequencyLumpSum:
		return 1
	default:
		return 12
	}
}

// TotalInstallments computes ceil(termMonths / (12 / periodsPerYear)).
// The division is done on integers so daily and weekly terms do not drift.
func TotalInstallments(termMonths int, frequency domain.PaymentFrequency) (int, error) {
	if termMonths <= 0 {
		return 0, fmt.Errorf("%w: term must be positive, got %d months", apperrors.ErrInvalidLoanParameters, termMonths)
	}
	ppy := PeriodsPerYear(frequency)
	n := (termMonths*ppy + 11) / 12
	if n < 1 {
		n = 1
	}
	return n, nil
}

// PeriodicRate converts an annual percentage rate into a per-installment fraction.
func PeriodicRate(annualPercentRate decimal.Decimal, frequency domain.PaymentFrequency) decimal.Decimal {
	ppy := decimal.NewFromInt(int64(PeriodsPerYear(frequency)))
	return annualPercentRate.Div(hundred).Div(ppy)
}

// EMI returns the equated installment for an amortizing loan, rounded to cents.
func EMI(principal, periodicRate decimal.Decimal, installments int) decimal.Decimal {
	n := decimal.NewFromInt(int64(installments))
	if periodicRate.LessThanOrEqual(rateEpsilon) {
		return Round2(principal.Div(n))
	}

	// (1+r)^n
	base := decimal.NewFromInt(1).Add(periodicRate)
	factor := decimal.NewFromInt(1)
	for i := 0; i < installments; i++ {
		factor = factor.Mul(base).Round(factorPrecision)
	}

	numerator := principal.Mul(periodicRate).Mul(factor)
	denominator := factor.Sub(decimal.NewFromInt(1))
	return Round2(numerator.Div(denominator))
}

// Round2 rounds a money value to cents, half away from zero.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// HasCentPrecision reports whether amount carries no more than two decimal places.
func HasCentPrecision(amount decimal.Decimal) bool {
	return amount.Equal(Round2(amount))
}

// ValidateLoanParameters rejects non-positive or sub-cent principals and non-positive terms.
func ValidateLoanParameters(principal decimal.Decimal, termMonths int) error {
	if principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: principal must be positive, got %s", apperrors.ErrInvalidLoanParameters, principal.String())
	}
	if !HasCentPrecision(principal) {
		return fmt.Errorf("%w: principal has more than two decimal places, got %s", apperrors.ErrInvalidLoanParameters, principal.String())
	}
	if termMonths <= 0 {
		return fmt.Errorf("%w: term must be positive, got %d months", apperrors.ErrInvalidLoanParameters, termMonths)
	}
	return nil
}

// CalculateUpfrontAmount is the share of the requested amount withheld at disbursement.
func CalculateUpfrontAmount(loanAmount, upfrontPercentage decimal.Decimal) decimal.Decimal {
	return Round2(loanAmount.Mul(upfrontPercentage).Div(hundred))
}

// CalculatePrincipalAmount is what the client actually receives.
func CalculatePrincipalAmount(loanAmount, upfrontAmount decimal.Decimal) decimal.Decimal {
	return loanAmount.Sub(upfrontAmount)
}

// PercentOf returns amount * percentage / 100 rounded to cents.
func PercentOf(amount, percentage decimal.Decimal) decimal.Decimal {
	if percentage.IsZero() {
		return decimal.Zero
	}
	return Round2(amount.Mul(percentage).Div(hundred))
}

// IsSettled reports whether a residual amount is within the rounding tolerance.
func IsSettled(residual decimal.Decimal) bool {
	return residual.LessThanOrEqual(RoundingEpsilon)
}
