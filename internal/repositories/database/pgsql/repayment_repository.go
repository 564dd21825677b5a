package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/SscSPs/microfinance_backend/internal/models"
	"github.com/SscSPs/microfinance_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const repaymentColumns = `
	repayment_id, loan_id, installment_number, due_date, amount, principal_amount, interest_amount,
	penalty_amount, paid_amount, paid_principal, paid_interest, status, payment_date, payment_method,
	transaction_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxRepaymentRepository struct {
	BaseRepository
}

// newPgxRepaymentRepository creates a new repository for installment rows.
func newPgxRepaymentRepository(pool *pgxpool.Pool) portsrepo.RepaymentRepositoryFacade {
	return &PgxRepaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RepaymentRepositoryFacade = (*PgxRepaymentRepository)(nil)

func scanRepayment(row pgx.Row) (models.LoanRepayment, error) {
	var m models.LoanRepayment
	err := row.Scan(
		&m.RepaymentID,
		&m.LoanID,
		&m.InstallmentNumber,
		&m.DueDate,
		&m.Amount,
		&m.PrincipalAmount,
		&m.InterestAmount,
		&m.PenaltyAmount,
		&m.PaidAmount,
		&m.PaidPrincipal,
		&m.PaidInterest,
		&m.Status,
		&m.PaymentDate,
		&m.PaymentMethod,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// ListRepaymentsByLoanID retrieves all installments of a loan in installment order.
func (r *PgxRepaymentRepository) ListRepaymentsByLoanID(ctx context.Context, loanID string) ([]domain.LoanRepayment, error) {
	query := `SELECT ` + repaymentColumns + `
		FROM loan_repayments
		WHERE loan_id = $1
		ORDER BY installment_number;`

	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments for loan %s: %w", loanID, err)
	}
	defer rows.Close()

	ms := []models.LoanRepayment{}
	for rows.Next() {
		m, err := scanRepayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment row for loan %s: %w", loanID, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment rows for loan %s: %w", loanID, err)
	}

	return mapping.ToDomainLoanRepaymentSlice(ms), nil
}

// SaveRepaymentsInTx inserts installment rows in one batch.
func (r *PgxRepaymentRepository) SaveRepaymentsInTx(ctx context.Context, tx pgx.Tx, repayments []domain.LoanRepayment) error {
	if len(repayments) == 0 {
		return nil
	}

	query := `INSERT INTO loan_repayments (` + repaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);`

	batch := &pgx.Batch{}
	for _, rep := range repayments {
		m := mapping.ToModelLoanRepayment(rep)
		batch.Queue(query,
			m.RepaymentID,
			m.LoanID,
			m.InstallmentNumber,
			m.DueDate,
			m.Amount,
			m.PrincipalAmount,
			m.InterestAmount,
			m.PenaltyAmount,
			m.PaidAmount,
			m.PaidPrincipal,
			m.PaidInterest,
			m.Status,
			m.PaymentDate,
			m.PaymentMethod,
			m.TransactionID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert %d installments for loan %s: %w", len(repayments), repayments[0].LoanID, err)
	}
	return nil
}

// FindEarliestPendingInstallmentForUpdate picks the installment the next payment applies to and locks it.
func (r *PgxRepaymentRepository) FindEarliestPendingInstallmentForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.LoanRepayment, error) {
	query := `SELECT ` + repaymentColumns + `
		FROM loan_repayments
		WHERE loan_id = $1 AND status IN ('pending', 'partial')
		ORDER BY due_date, installment_number
		LIMIT 1
		FOR UPDATE;`

	m, err := scanRepayment(tx.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock next installment for loan %s: %w", loanID, err)
	}
	rep := mapping.ToDomainLoanRepayment(m)
	return &rep, nil
}

// UpdateRepaymentInTx writes the amount, paid and status columns of an installment.
func (r *PgxRepaymentRepository) UpdateRepaymentInTx(ctx context.Context, tx pgx.Tx, repayment domain.LoanRepayment) error {
	m := mapping.ToModelLoanRepayment(repayment)
	query := `
		UPDATE loan_repayments
		SET amount = $2, principal_amount = $3, interest_amount = $4, penalty_amount = $5,
		    paid_amount = $6, paid_principal = $7, paid_interest = $8, status = $9,
		    payment_date = $10, payment_method = $11, transaction_id = $12,
		    last_updated_at = $13, last_updated_by = $14
		WHERE repayment_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.RepaymentID,
		m.Amount,
		m.PrincipalAmount,
		m.InterestAmount,
		m.PenaltyAmount,
		m.PaidAmount,
		m.PaidPrincipal,
		m.PaidInterest,
		m.Status,
		m.PaymentDate,
		m.PaymentMethod,
		m.TransactionID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update installment %s: %w", m.RepaymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		slog.WarnContext(ctx, "Installment disappeared while locked", "repayment_id", m.RepaymentID, "loan_id", m.LoanID)
		return fmt.Errorf("%w: installment %s not found during update", apperrors.ErrNotFound, m.RepaymentID)
	}
	return nil
}
