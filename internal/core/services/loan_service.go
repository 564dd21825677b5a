package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/microfinance_backend/internal/core/ports/services"
	"github.com/SscSPs/microfinance_backend/internal/dto"
	"github.com/google/uuid"
)

// loanService prices, originates and moves loans through their lifecycle.
type loanService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	loanRepo      portsrepo.LoanRepositoryFacade
	repaymentRepo portsrepo.RepaymentRepositoryFacade
	clientRepo    portsrepo.ClientReader
	effects       sideEffects
}

// LoanServiceOption is a functional option for configuring the loan service
type LoanServiceOption func(*loanService)

// WithLoanClientRepository enables the client existence check at origination.
func WithLoanClientRepository(repo portsrepo.ClientReader) LoanServiceOption {
	return func(s *loanService) {
		s.clientRepo = repo
	}
}

// WithLoanNotifications adds the notification store used after origination.
func WithLoanNotifications(repo portsrepo.NotificationRepositoryFacade) LoanServiceOption {
	return func(s *loanService) {
		s.effects.notificationRepo = repo
	}
}

// WithLoanEventTracker adds product analytics.
func WithLoanEventTracker(tracker EventTracker) LoanServiceOption {
	return func(s *loanService) {
		s.effects.events = tracker
	}
}

// WithLoanClock overrides the service clock.
func WithLoanClock(now func() time.Time) LoanServiceOption {
	return func(s *loanService) {
		s.now = now
	}
}

// NewLoanService creates a new loan service with the provided options
func NewLoanService(txManager portsrepo.TransactionManager, loanRepo portsrepo.LoanRepositoryFacade, repaymentRepo portsrepo.RepaymentRepositoryFacade, options ...LoanServiceOption) portssvc.LoanSvcFacade {
	svc := &loanService{
		txManager:     txManager,
		loanRepo:      loanRepo,
		repaymentRepo: repaymentRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) scheduleStart(req dto.LoanTermsRequest) time.Time {
	if req.DisbursementDate != nil {
		return req.DisbursementDate.UTC()
	}
	return s.Now()
}

// CalculateLoan previews a loan without touching the database.
func (s *loanService) CalculateLoan(ctx context.Context, req dto.LoanTermsRequest) (*domain.LoanCalculation, error) {
	calc, err := calculateLoan(req, s.scheduleStart(req))
	if err != nil {
		s.LogDebug(ctx, "Loan calculation rejected", slog.String("error", err.Error()))
		return nil, err
	}
	return calc, nil
}

// CreateLoan prices the loan and stores it with all of its installments in one transaction.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error) {
	calc, err := calculateLoan(req.LoanTermsRequest, s.scheduleStart(req.LoanTermsRequest))
	if err != nil {
		return nil, err
	}

	if s.clientRepo != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
			s.LogError(ctx, err, "Client lookup failed for loan origination", slog.String("client_id", req.ClientID))
			return nil, fmt.Errorf("failed to load client %s: %w", req.ClientID, err)
		}
	}

	now := s.Now()
	audit := domain.NewAuditFields(userID, now)
	loan := domain.Loan{
		LoanID:                   uuid.NewString(),
		ClientID:                 req.ClientID,
		LoanType:                 calc.LoanType,
		Amount:                   calc.LoanAmount,
		PrincipalAmount:          calc.Principal,
		InterestRate:             calc.InterestRate,
		TermMonths:               calc.TermMonths,
		InterestMethod:           calc.InterestMethod,
		PaymentFrequency:         calc.PaymentFrequency,
		UpfrontPercentage:        calc.UpfrontPercentage,
		UpfrontAmount:            calc.UpfrontAmount,
		DefaultChargesPercentage: calc.DefaultChargesPercentage,
		DefaultChargesAmount:     calc.DefaultChargesAmount,
		OutstandingBalance:       calc.OutstandingBalance,
		TotalInterest:            calc.TotalInterest,
		TotalAmount:              calc.TotalAmount,
		MonthlyPayment:           calc.MonthlyPayment,
		Status:                   domain.LoanPending,
		DisbursementDate:         req.DisbursementDate,
		RepaymentSchedule:        calc.Schedule,
		AuditFields:              audit,
	}
	rows := repaymentRows(loan.LoanID, calc.Schedule, uuid.NewString, audit)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin loan origination transaction")
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	loan.LoanNumber, err = s.loanRepo.NextLoanNumberInTx(ctx, tx)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate loan number")
		return nil, fmt.Errorf("failed to allocate loan number: %w", err)
	}
	if err := s.loanRepo.SaveLoanInTx(ctx, tx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("loan_id", loan.LoanID))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}
	if err := s.repaymentRepo.SaveRepaymentsInTx(ctx, tx, rows); err != nil {
		s.LogError(ctx, err, "Failed to save installments", slog.String("loan_id", loan.LoanID), slog.Int("count", len(rows)))
		return nil, fmt.Errorf("failed to save installments: %w", err)
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit loan origination", slog.String("loan_id", loan.LoanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan created",
		slog.String("loan_id", loan.LoanID),
		slog.String("loan_number", loan.LoanNumber),
		slog.String("loan_type", string(loan.LoanType)),
		slog.Int("installments", len(rows)))

	s.BestEffort(ctx, "loan_created_notification", func(ctx context.Context) error {
		msg := fmt.Sprintf("Loan %s of %s created for client %s", loan.LoanNumber, loan.Amount.StringFixed(2), loan.ClientID)
		return s.effects.notify(ctx, userID, notificationKindLoan, "Loan created", msg, now)
	})
	s.effects.track(userID, EventLoanOriginated, map[string]any{
		"loan_id":   loan.LoanID,
		"loan_type": string(loan.LoanType),
		"amount":    loan.Amount.String(),
		"term":      loan.TermMonths,
	})

	return &loan, nil
}

// GetLoanByID retrieves a loan with its stored schedule.
func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// ListRepayments returns a loan's installment rows.
func (s *loanService) ListRepayments(ctx context.Context, loanID string) ([]domain.LoanRepayment, error) {
	if _, err := s.loanRepo.FindLoanByID(ctx, loanID); err != nil {
		return nil, err
	}
	return s.repaymentRepo.ListRepaymentsByLoanID(ctx, loanID)
}

// UpdateLoanStatus applies an explicit lifecycle transition.
func (s *loanService) UpdateLoanStatus(ctx context.Context, loanID string, status domain.LoanStatus, userID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if !loan.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusTransition, loan.Status, status)
	}

	now := s.Now()
	if err := s.loanRepo.UpdateLoanStatus(ctx, loanID, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update loan status", slog.String("loan_id", loanID), slog.String("status", string(status)))
		return nil, err
	}

	previous := loan.Status
	loan.Status = status
	if status == domain.LoanDisbursed && loan.DisbursementDate == nil {
		loan.DisbursementDate = &now
	}
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = userID

	s.LogInfo(ctx, "Loan status updated",
		slog.String("loan_id", loanID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))
	s.effects.track(userID, EventLoanStatusChanged, map[string]any{
		"loan_id": loanID,
		"from":    string(previous),
		"to":      string(status),
	})
	return loan, nil
}
