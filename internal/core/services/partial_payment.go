package services

import (
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PartialPaymentMode selects how repeated payments on one installment are recorded.
type PartialPaymentMode string

const (
	PartialPaymentOverwrite  PartialPaymentMode = "overwrite"
	PartialPaymentAccumulate PartialPaymentMode = "accumulate"
)

// PaymentSplit is how one payment was applied to an installment.
type PaymentSplit struct {
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Penalty   decimal.Decimal
	Settled   bool
}

// PartialPaymentPolicy splits a payment and records it on the installment row.
type PartialPaymentPolicy interface {
	Mode() PartialPaymentMode
	Apply(installment *domain.LoanRepayment, amount decimal.Decimal) PaymentSplit
}

// NewPartialPaymentPolicy returns the policy for mode. Empty selects overwrite.
func NewPartialPaymentPolicy(mode PartialPaymentMode) (PartialPaymentPolicy, error) {
	switch mode {
	case PartialPaymentOverwrite, "":
		return OverwritePartialPayment{}, nil
	case PartialPaymentAccumulate:
		return AccumulatePartialPayment{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown partial payment mode %q", apperrors.ErrValidation, mode)
	}
}

// OverwritePartialPayment replaces the installment's amount, principal and interest with
// the latest payment. A second partial payment is therefore compared against the first
// payment's amount rather than the scheduled amount.
type OverwritePartialPayment struct{}

func (OverwritePartialPayment) Mode() PartialPaymentMode {
	return PartialPaymentOverwrite
}

func (OverwritePartialPayment) Apply(inst *domain.LoanRepayment, amount decimal.Decimal) PaymentSplit {
	interest := decimal.Min(amount, inst.InterestAmount)
	split := PaymentSplit{
		Interest:  interest,
		Principal: amount.Sub(interest),
		Penalty:   decimal.Zero,
		Settled:   accounting.IsSettled(inst.Amount.Sub(amount)),
	}

	inst.Amount = amount
	inst.PrincipalAmount = split.Principal
	inst.InterestAmount = split.Interest
	inst.PaidAmount = amount
	inst.PaidPrincipal = split.Principal
	inst.PaidInterest = split.Interest
	return split
}

// AccumulatePartialPayment keeps the scheduled amounts and adds each payment to the paid columns.
type AccumulatePartialPayment struct{}

func (AccumulatePartialPayment) Mode() PartialPaymentMode {
	return PartialPaymentAccumulate
}

func (AccumulatePartialPayment) Apply(inst *domain.LoanRepayment, amount decimal.Decimal) PaymentSplit {
	interestDue := decimal.Max(decimal.Zero, inst.InterestAmount.Sub(inst.PaidInterest))
	interest := decimal.Min(amount, interestDue)
	due := inst.Amount.Sub(inst.PaidAmount)

	split := PaymentSplit{
		Interest:  interest,
		Principal: amount.Sub(interest),
		Penalty:   decimal.Zero,
		Settled:   accounting.IsSettled(due.Sub(amount)),
	}

	inst.PaidAmount = inst.PaidAmount.Add(amount)
	inst.PaidPrincipal = inst.PaidPrincipal.Add(split.Principal)
	inst.PaidInterest = inst.PaidInterest.Add(split.Interest)
	return split
}
