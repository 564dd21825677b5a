package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SavingsAccountTransactionSupport defines savings operations used while posting a repayment
type SavingsAccountTransactionSupport interface {
	// FindActiveSavingsAccountsInTx lists active accounts ordered by creation.
	// A nil clientID lists every active account in the system.
	FindActiveSavingsAccountsInTx(ctx context.Context, tx pgx.Tx, clientID *string) ([]domain.SavingsAccount, error)

	// CreditSavingsBalancesInTx adds each amount to the matching account balance.
	CreditSavingsBalancesInTx(ctx context.Context, tx pgx.Tx, credits map[string]decimal.Decimal, userID string, now time.Time) error
}

// SavingsAccountRepositoryFacade combines all savings-related repository interfaces
type SavingsAccountRepositoryFacade interface {
	SavingsAccountTransactionSupport
}
