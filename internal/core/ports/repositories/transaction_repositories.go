package repositories

import (
	"context"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for ledger rows
type TransactionReader interface {
	// ListTransactionsByLoanID returns ledger rows referencing a loan, newest first.
	ListTransactionsByLoanID(ctx context.Context, loanID string) ([]domain.Transaction, error)
}

// TransactionWriterInTx defines ledger writes that run inside a caller-owned transaction
type TransactionWriterInTx interface {
	// NextTransactionNumbersInTx reserves count transaction numbers from the database sequence.
	NextTransactionNumbersInTx(ctx context.Context, tx pgx.Tx, count int) ([]string, error)

	// SaveTransactionsInTx inserts ledger rows in a single batch.
	SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriterInTx
}
