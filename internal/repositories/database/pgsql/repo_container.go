package pgsql

import (
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:        NewTransactionManager(dbPool),
		LoanRepo:         newPgxLoanRepository(dbPool),
		RepaymentRepo:    newPgxRepaymentRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		SavingsRepo:      newPgxSavingsRepository(dbPool),
		ClientRepo:       newPgxClientRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
