package distribution

import (
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PercentageSplit applies the loan type's admin/client/general fractions.
// Loan types without fractions, and shares that have nowhere to go, fall to admin,
// so the credits always sum to the collected interest.
type PercentageSplit struct{}

func (PercentageSplit) Name() Name {
	return NamePercentageSplit
}

func (PercentageSplit) Distribute(interest decimal.Decimal, cfg domain.LoanTypeConfig, payerAccounts, activeAccounts []domain.SavingsAccount) []Credit {
	if interest.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	if cfg.InterestDistribution == nil {
		return []Credit{{Type: domain.TxAdminInterest, Amount: interest}}
	}

	split := cfg.InterestDistribution
	clientShare := accounting.Round2(interest.Mul(split.Client))
	generalAmount := accounting.Round2(interest.Mul(split.General))

	var credits []Credit
	remaining := interest

	if clientShare.IsPositive() && len(payerAccounts) > 0 {
		credits = append(credits, accountCredit(domain.TxPersonalInterestPayment, clientShare, payerAccounts[0]))
		remaining = remaining.Sub(clientShare)
	}
	if generalAmount.IsPositive() && len(activeAccounts) > 0 {
		credits = append(credits, generalShare(generalAmount, activeAccounts)...)
		remaining = remaining.Sub(generalAmount)
	}
	if remaining.IsPositive() {
		credits = append(credits, Credit{Type: domain.TxAdminInterest, Amount: remaining})
	}
	return credits
}
