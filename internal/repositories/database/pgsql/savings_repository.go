package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/SscSPs/microfinance_backend/internal/models"
	"github.com/SscSPs/microfinance_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSavingsRepository struct {
	BaseRepository
}

// newPgxSavingsRepository creates a new repository for savings accounts.
func newPgxSavingsRepository(pool *pgxpool.Pool) portsrepo.SavingsAccountRepositoryFacade {
	return &PgxSavingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SavingsAccountRepositoryFacade = (*PgxSavingsRepository)(nil)

// FindActiveSavingsAccountsInTx lists active accounts, oldest first.
// With a nil clientID every active account is returned.
func (r *PgxSavingsRepository) FindActiveSavingsAccountsInTx(ctx context.Context, tx pgx.Tx, clientID *string) ([]domain.SavingsAccount, error) {
	query := `
		SELECT savings_account_id, account_number, client_id, balance, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM savings_accounts
		WHERE status = 'active' AND ($1::text IS NULL OR client_id = $1::text)
		ORDER BY created_at, savings_account_id;
	`
	rows, err := tx.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active savings accounts: %w", err)
	}
	defer rows.Close()

	ms := []models.SavingsAccount{}
	for rows.Next() {
		var m models.SavingsAccount
		err := rows.Scan(
			&m.SavingsAccountID,
			&m.AccountNumber,
			&m.ClientID,
			&m.Balance,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings account row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating savings account rows: %w", err)
	}

	return mapping.ToDomainSavingsAccountSlice(ms), nil
}

// CreditSavingsBalancesInTx adds each credit to its account balance within a transaction.
func (r *PgxSavingsRepository) CreditSavingsBalancesInTx(ctx context.Context, tx pgx.Tx, credits map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(credits) == 0 {
		return nil
	}

	query := `
		UPDATE savings_accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE savings_account_id = $1;
	`

	// Fixed order so concurrent repayments take row locks in the same sequence.
	accountIDs := make([]string, 0, len(credits))
	for accountID, delta := range credits {
		if !delta.IsZero() {
			accountIDs = append(accountIDs, accountID)
		}
	}
	sort.Strings(accountIDs)

	batch := &pgx.Batch{}
	for _, accountID := range accountIDs {
		batch.Queue(query, accountID, credits[accountID], now, userID)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	updatedCount := 0
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to credit savings account %s: %w", accountIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: savings account %s not found during credit", apperrors.ErrNotFound, accountIDs[i])
			}
		} else {
			updatedCount++
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close savings credit batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	if updatedCount != batch.Len() {
		slog.WarnContext(ctx, "Mismatch between expected and actual savings credits", "expected", batch.Len(), "actual", updatedCount)
	}
	return nil
}
