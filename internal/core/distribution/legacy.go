package distribution

import (
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LegacyDoubleCredit credits the full interest to the payer's first active account
// and then splits the same amount again across every active account.
// The loan type's distribution fractions are ignored, so savers receive twice what was collected.
type LegacyDoubleCredit struct{}

func (LegacyDoubleCredit) Name() Name {
	return NameLegacyDoubleCredit
}

func (LegacyDoubleCredit) Distribute(interest decimal.Decimal, _ domain.LoanTypeConfig, payerAccounts, activeAccounts []domain.SavingsAccount) []Credit {
	if interest.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	var credits []Credit
	if len(payerAccounts) > 0 {
		credits = append(credits, accountCredit(domain.TxPersonalInterestPayment, interest, payerAccounts[0]))
	}
	return append(credits, generalShare(interest, activeAccounts)...)
}
