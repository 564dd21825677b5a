package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/SscSPs/microfinance_backend/internal/models"
	"github.com/SscSPs/microfinance_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	transaction_id, transaction_number, transaction_type, amount, loan_id, client_id,
	savings_account_id, payment_method, description, transaction_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger rows.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactionsByLoanID retrieves ledger rows for a loan, newest first.
func (r *PgxTransactionRepository) ListTransactionsByLoanID(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE loan_id = $1
		ORDER BY transaction_date DESC, transaction_number DESC;`

	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for loan %s: %w", loanID, err)
	}
	defer rows.Close()

	ms := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.TransactionNumber,
			&m.TransactionType,
			&m.Amount,
			&m.LoanID,
			&m.ClientID,
			&m.SavingsAccountID,
			&m.PaymentMethod,
			&m.Description,
			&m.TransactionDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for loan %s: %w", loanID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for loan %s: %w", loanID, err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// NextTransactionNumbersInTx reserves count numbers from transaction_number_seq, formatted as TXN-000123.
func (r *PgxTransactionRepository) NextTransactionNumbersInTx(ctx context.Context, tx pgx.Tx, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	rows, err := tx.Query(ctx, `SELECT nextval('transaction_number_seq') FROM generate_series(1, $1);`, count)
	if err != nil {
		return nil, fmt.Errorf("failed to draw %d transaction numbers: %w", count, err)
	}
	defer rows.Close()

	numbers := make([]string, 0, count)
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, fmt.Errorf("failed to scan transaction number: %w", err)
		}
		numbers = append(numbers, fmt.Sprintf("TXN-%06d", seq))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction numbers: %w", err)
	}
	return numbers, nil
}

// SaveTransactionsInTx inserts ledger rows in one batch.
func (r *PgxTransactionRepository) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	batch := &pgx.Batch{}
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.TransactionNumber,
			m.TransactionType,
			m.Amount,
			m.LoanID,
			m.ClientID,
			m.SavingsAccountID,
			m.PaymentMethod,
			m.Description,
			m.TransactionDate,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert %d transactions: %w", len(transactions), err)
	}
	return nil
}
