// Package distribution decides how collected loan interest is credited back to savers.
package distribution

import (
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Name identifies a strategy in configuration.
type Name string

const (
	NameLegacyDoubleCredit Name = "legacy_double_credit"
	NamePercentageSplit    Name = "percentage_split"
)

// Credit is one interest movement to record. SavingsAccountID is nil for credits
// that are booked without touching a savings balance (admin share).
type Credit struct {
	Type             domain.TransactionType
	Amount           decimal.Decimal
	SavingsAccountID *string
	ClientID         *string
}

// Strategy turns an interest amount into credits.
// payerAccounts are the paying client's active savings accounts, oldest first;
// activeAccounts are every active savings account in the system.
type Strategy interface {
	Name() Name
	Distribute(interest decimal.Decimal, cfg domain.LoanTypeConfig, payerAccounts, activeAccounts []domain.SavingsAccount) []Credit
}

// New returns the strategy registered under name. Empty selects the legacy behaviour.
func New(name Name) (Strategy, error) {
	switch name {
	case NameLegacyDoubleCredit, "":
		return LegacyDoubleCredit{}, nil
	case NamePercentageSplit:
		return PercentageSplit{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown interest distribution strategy %q", apperrors.ErrValidation, name)
	}
}

// Total sums the amounts of credits.
func Total(credits []Credit) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range credits {
		sum = sum.Add(c.Amount)
	}
	return sum
}

func accountCredit(txType domain.TransactionType, amount decimal.Decimal, acc domain.SavingsAccount) Credit {
	accountID := acc.SavingsAccountID
	clientID := acc.ClientID
	return Credit{
		Type:             txType,
		Amount:           amount,
		SavingsAccountID: &accountID,
		ClientID:         &clientID,
	}
}

// generalShare splits amount evenly over accounts as general_interest credits.
func generalShare(amount decimal.Decimal, accounts []domain.SavingsAccount) []Credit {
	if amount.LessThanOrEqual(decimal.Zero) || len(accounts) == 0 {
		return nil
	}
	shares := splitEvenly(amount, len(accounts))
	credits := make([]Credit, 0, len(accounts))
	for i, acc := range accounts {
		if shares[i].IsZero() {
			continue
		}
		credits = append(credits, accountCredit(domain.TxGeneralInterest, shares[i], acc))
	}
	return credits
}

// splitEvenly divides amount into n cent-rounded parts that sum back to amount.
// Leftover cents go to the first parts.
func splitEvenly(amount decimal.Decimal, n int) []decimal.Decimal {
	cents := amount.Shift(2).Round(0).IntPart()
	base := cents / int64(n)
	extra := cents % int64(n)

	parts := make([]decimal.Decimal, n)
	for i := range parts {
		c := base
		if int64(i) < extra {
			c++
		}
		parts[i] = decimal.New(c, -2)
	}
	return parts
}
