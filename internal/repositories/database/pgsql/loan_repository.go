package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/SscSPs/microfinance_backend/internal/models"
	"github.com/SscSPs/microfinance_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const loanColumns = `
	loan_id, loan_number, client_id, loan_type, amount, principal_amount, interest_rate,
	term_months, interest_method, payment_frequency, upfront_percentage, upfront_amount,
	default_charges_percentage, default_charges_amount, outstanding_balance, total_paid,
	total_interest, total_amount, monthly_payment, status, disbursement_date, repayment_schedule,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryWithTx {
	return &PgxLoanRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LoanRepositoryWithTx = (*PgxLoanRepository)(nil)

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.LoanNumber,
		&m.ClientID,
		&m.LoanType,
		&m.Amount,
		&m.PrincipalAmount,
		&m.InterestRate,
		&m.TermMonths,
		&m.InterestMethod,
		&m.PaymentFrequency,
		&m.UpfrontPercentage,
		&m.UpfrontAmount,
		&m.DefaultChargesPercentage,
		&m.DefaultChargesAmount,
		&m.OutstandingBalance,
		&m.TotalPaid,
		&m.TotalInterest,
		&m.TotalAmount,
		&m.MonthlyPayment,
		&m.Status,
		&m.DisbursementDate,
		&m.RepaymentSchedule,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	loan, err := mapping.ToDomainLoan(m)
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// FindLoanByID retrieves a loan by its ID.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`

	loan, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}
	return loan, nil
}

// FindLoanByIDForUpdate retrieves a loan and locks the row. Must be called within a transaction.
func (r *PgxLoanRepository) FindLoanByIDForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1 FOR UPDATE;`

	loan, err := scanLoan(tx.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock loan %s: %w", loanID, err)
	}
	return loan, nil
}

// NextLoanNumberInTx draws from loan_number_seq and formats the result as LN-000123.
func (r *PgxLoanRepository) NextLoanNumberInTx(ctx context.Context, tx pgx.Tx) (string, error) {
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('loan_number_seq');`).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to draw loan number: %w", err)
	}
	return fmt.Sprintf("LN-%06d", seq), nil
}

// SaveLoanInTx inserts a new loan row.
func (r *PgxLoanRepository) SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	m, err := mapping.ToModelLoan(loan)
	if err != nil {
		return err
	}

	query := `INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);`

	_, err = tx.Exec(ctx, query,
		m.LoanID,
		m.LoanNumber,
		m.ClientID,
		m.LoanType,
		m.Amount,
		m.PrincipalAmount,
		m.InterestRate,
		m.TermMonths,
		m.InterestMethod,
		m.PaymentFrequency,
		m.UpfrontPercentage,
		m.UpfrontAmount,
		m.DefaultChargesPercentage,
		m.DefaultChargesAmount,
		m.OutstandingBalance,
		m.TotalPaid,
		m.TotalInterest,
		m.TotalAmount,
		m.MonthlyPayment,
		m.Status,
		m.DisbursementDate,
		m.RepaymentSchedule,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: loan %s (%s) already exists", apperrors.ErrDuplicate, m.LoanID, m.LoanNumber)
		}
		return fmt.Errorf("failed to save loan %s: %w", m.LoanID, err)
	}
	return nil
}

// UpdateLoanBalanceInTx writes the running totals and status after a repayment.
func (r *PgxLoanRepository) UpdateLoanBalanceInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	query := `
		UPDATE loans
		SET outstanding_balance = $2, total_paid = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE loan_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		loan.LoanID,
		loan.OutstandingBalance,
		loan.TotalPaid,
		string(loan.Status),
		loan.LastUpdatedAt,
		loan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance of loan %s: %w", loan.LoanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s not found during balance update", apperrors.ErrNotFound, loan.LoanID)
	}
	return nil
}

// UpdateLoanStatus changes the status of a loan outside of a repayment.
// The disbursement date is only stamped the first time a loan is disbursed.
func (r *PgxLoanRepository) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string, now time.Time) error {
	query := `
		UPDATE loans
		SET status = $2::text,
		    disbursement_date = CASE WHEN $2::text = 'disbursed' THEN COALESCE(disbursement_date, $3) ELSE disbursement_date END,
		    last_updated_at = $3, last_updated_by = $4
		WHERE loan_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, loanID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of loan %s: %w", loanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
