package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/distribution"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/microfinance_backend/internal/core/ports/services"
	"github.com/SscSPs/microfinance_backend/internal/dto"
	"github.com/SscSPs/microfinance_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const defaultPaymentMethod = "cash"

// repaymentService applies payments to installments and distributes the interest.
type repaymentService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	loanRepo        portsrepo.LoanRepositoryFacade
	repaymentRepo   portsrepo.RepaymentRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	savingsRepo     portsrepo.SavingsAccountRepositoryFacade
	clientRepo      portsrepo.ClientReader
	distribution    distribution.Strategy
	partialPayments PartialPaymentPolicy
	effects         sideEffects
}

// RepaymentServiceOption is a functional option for configuring the repayment service
type RepaymentServiceOption func(*repaymentService)

// WithDistributionStrategy overrides the interest distribution strategy.
func WithDistributionStrategy(strategy distribution.Strategy) RepaymentServiceOption {
	return func(s *repaymentService) {
		s.distribution = strategy
	}
}

// WithPartialPaymentPolicy overrides how partial payments are recorded.
func WithPartialPaymentPolicy(policy PartialPaymentPolicy) RepaymentServiceOption {
	return func(s *repaymentService) {
		s.partialPayments = policy
	}
}

// WithRepaymentClientRepository enables client names on receipts.
func WithRepaymentClientRepository(repo portsrepo.ClientReader) RepaymentServiceOption {
	return func(s *repaymentService) {
		s.clientRepo = repo
	}
}

// WithRepaymentNotifications adds the notification store used after a payment posts.
func WithRepaymentNotifications(repo portsrepo.NotificationRepositoryFacade) RepaymentServiceOption {
	return func(s *repaymentService) {
		s.effects.notificationRepo = repo
	}
}

// WithRepaymentEventTracker adds product analytics.
func WithRepaymentEventTracker(tracker EventTracker) RepaymentServiceOption {
	return func(s *repaymentService) {
		s.effects.events = tracker
	}
}

// WithRepaymentClock overrides the service clock.
func WithRepaymentClock(now func() time.Time) RepaymentServiceOption {
	return func(s *repaymentService) {
		s.now = now
	}
}

// NewRepaymentService creates a repayment processor. Without options it uses the
// legacy double-credit distribution and overwrites partial payments.
func NewRepaymentService(
	txManager portsrepo.TransactionManager,
	loanRepo portsrepo.LoanRepositoryFacade,
	repaymentRepo portsrepo.RepaymentRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	savingsRepo portsrepo.SavingsAccountRepositoryFacade,
	options ...RepaymentServiceOption,
) portssvc.RepaymentSvcFacade {
	svc := &repaymentService{
		txManager:       txManager,
		loanRepo:        loanRepo,
		repaymentRepo:   repaymentRepo,
		transactionRepo: transactionRepo,
		savingsRepo:     savingsRepo,
		distribution:    distribution.LegacyDoubleCredit{},
		partialPayments: OverwritePartialPayment{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RepaymentSvcFacade = (*repaymentService)(nil)

// PostRepayment applies a payment to the loan's earliest open installment.
// Everything from locking the loan to updating its balance commits or rolls back together.
func (s *repaymentService) PostRepayment(ctx context.Context, loanID string, req dto.PostRepaymentRequest, userID string) (*domain.RepaymentResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidPaymentAmount, req.Amount.String())
	}
	if !accounting.HasCentPrecision(req.Amount) {
		return nil, fmt.Errorf("%w: amount has more than two decimal places, got %s", apperrors.ErrInvalidPaymentAmount, req.Amount.String())
	}

	now := s.Now()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}
	method := req.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin repayment transaction", slog.String("loan_id", loanID))
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	loan, err := s.loanRepo.FindLoanByIDForUpdate(ctx, tx, loanID)
	if err != nil {
		return nil, err
	}
	if !loan.Status.IsPayable() {
		return nil, fmt.Errorf("%w: loan %s is %s", apperrors.ErrLoanNotPayable, loan.LoanNumber, loan.Status)
	}
	if req.Amount.GreaterThan(loan.OutstandingBalance) {
		return nil, fmt.Errorf("%w: amount %s, outstanding %s", apperrors.ErrPaymentExceedsBalance, req.Amount.StringFixed(2), loan.OutstandingBalance.StringFixed(2))
	}

	installment, err := s.repaymentRepo.FindEarliestPendingInstallmentForUpdate(ctx, tx, loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: loan %s", apperrors.ErrNoPendingInstallment, loan.LoanNumber)
		}
		return nil, err
	}

	split := s.partialPayments.Apply(installment, req.Amount)
	if split.Settled {
		installment.Status = domain.InstallmentCompleted
		installment.PaymentDate = &paymentDate
		installment.PaymentMethod = method
	} else {
		installment.Status = domain.InstallmentPartial
	}
	installment.PenaltyAmount = split.Penalty
	installment.LastUpdatedAt = now
	installment.LastUpdatedBy = userID

	credits, err := s.distributeInterest(ctx, tx, loan, split.Interest)
	if err != nil {
		return nil, err
	}

	transactions, err := s.buildTransactions(ctx, tx, loan, installment.InstallmentNumber, req.Amount, method, paymentDate, credits, domain.NewAuditFields(userID, now))
	if err != nil {
		return nil, err
	}
	if err := s.transactionRepo.SaveTransactionsInTx(ctx, tx, transactions); err != nil {
		s.LogError(ctx, err, "Failed to save repayment transactions", slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	if balances := savingsCredits(credits); len(balances) > 0 {
		if err := s.savingsRepo.CreditSavingsBalancesInTx(ctx, tx, balances, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to credit savings balances", slog.String("loan_id", loanID))
			return nil, fmt.Errorf("failed to credit savings accounts: %w", err)
		}
	}

	paymentTx := transactions[0]
	installment.TransactionID = &paymentTx.TransactionID
	if err := s.repaymentRepo.UpdateRepaymentInTx(ctx, tx, *installment); err != nil {
		s.LogError(ctx, err, "Failed to update installment", slog.String("repayment_id", installment.RepaymentID))
		return nil, fmt.Errorf("failed to update installment: %w", err)
	}

	loan.OutstandingBalance = decimal.Max(decimal.Zero, loan.OutstandingBalance.Sub(split.Principal))
	loan.TotalPaid = loan.TotalPaid.Add(req.Amount)
	if accounting.IsSettled(loan.OutstandingBalance) {
		loan.Status = domain.LoanCompleted
	}
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = userID
	if err := s.loanRepo.UpdateLoanBalanceInTx(ctx, tx, *loan); err != nil {
		s.LogError(ctx, err, "Failed to update loan balance", slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit repayment", slog.String("loan_id", loanID))
		return nil, err
	}

	s.LogInfo(ctx, "Repayment posted",
		slog.String("loan_id", loanID),
		slog.String("transaction_number", paymentTx.TransactionNumber),
		slog.String("amount", req.Amount.String()),
		slog.String("interest", split.Interest.String()),
		slog.String("principal", split.Principal.String()),
		slog.Int("interest_credits", len(credits)))

	result := &domain.RepaymentResult{
		Installment:  *installment,
		Transactions: transactions,
		Loan:         *loan,
		Receipt: domain.Receipt{
			TransactionNumber:  paymentTx.TransactionNumber,
			ClientName:         s.clientName(ctx, loan.ClientID),
			LoanNumber:         loan.LoanNumber,
			InstallmentNumber:  installment.InstallmentNumber,
			Amount:             req.Amount,
			PrincipalPortion:   split.Principal,
			InterestPortion:    split.Interest,
			PenaltyPortion:     split.Penalty,
			OutstandingBalance: loan.OutstandingBalance,
			PaymentDate:        paymentDate,
			PaymentMethod:      method,
		},
	}

	s.BestEffort(ctx, "repayment_notification", func(ctx context.Context) error {
		msg := fmt.Sprintf("Payment of %s received for loan %s (%s)", req.Amount.StringFixed(2), loan.LoanNumber, paymentTx.TransactionNumber)
		return s.effects.notify(ctx, userID, notificationKindRepayment, "Loan payment received", msg, now)
	})
	s.effects.track(userID, EventLoanRepaymentPosted, map[string]any{
		"loan_id":     loanID,
		"amount":      req.Amount.String(),
		"interest":    split.Interest.String(),
		"loan_status": string(loan.Status),
	})

	return result, nil
}

// ListLoanTransactions returns the ledger rows posted against a loan.
func (s *repaymentService) ListLoanTransactions(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	if _, err := s.loanRepo.FindLoanByID(ctx, loanID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListTransactionsByLoanID(ctx, loanID)
}

func (s *repaymentService) distributeInterest(ctx context.Context, tx pgx.Tx, loan *domain.Loan, interest decimal.Decimal) ([]distribution.Credit, error) {
	if !interest.IsPositive() {
		return nil, nil
	}

	clientID := loan.ClientID
	payerAccounts, err := s.savingsRepo.FindActiveSavingsAccountsInTx(ctx, tx, &clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load client savings accounts", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to load client savings accounts: %w", err)
	}
	allActive, err := s.savingsRepo.FindActiveSavingsAccountsInTx(ctx, tx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load active savings accounts")
		return nil, fmt.Errorf("failed to load active savings accounts: %w", err)
	}

	cfg := domain.GetLoanTypeConfig(loan.LoanType)
	credits := s.distribution.Distribute(interest, cfg, payerAccounts, allActive)
	s.LogDebug(ctx, "Interest distributed",
		slog.String("strategy", string(s.distribution.Name())),
		slog.String("interest", interest.String()),
		slog.Int("payer_accounts", len(payerAccounts)),
		slog.Int("active_accounts", len(allActive)),
		slog.String("credited", distribution.Total(credits).String()))
	return credits, nil
}

// buildTransactions returns the loan payment row first, then one row per interest credit.
func (s *repaymentService) buildTransactions(ctx context.Context, tx pgx.Tx, loan *domain.Loan, installmentNumber int, amount decimal.Decimal, method string, paidAt time.Time, credits []distribution.Credit, audit domain.AuditFields) ([]domain.Transaction, error) {
	numbers, err := s.transactionRepo.NextTransactionNumbersInTx(ctx, tx, len(credits)+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate transaction numbers")
		return nil, fmt.Errorf("failed to allocate transaction numbers: %w", err)
	}
	if len(numbers) != len(credits)+1 {
		return nil, apperrors.NewAppError(500, "transaction number allocation returned the wrong count", apperrors.ErrInternal)
	}

	loanID := loan.LoanID
	clientID := loan.ClientID
	transactions := make([]domain.Transaction, 0, len(credits)+1)
	transactions = append(transactions, domain.Transaction{
		TransactionID:     uuid.NewString(),
		TransactionNumber: numbers[0],
		TransactionType:   domain.TxLoanPayment,
		Amount:            amount,
		LoanID:            &loanID,
		ClientID:          &clientID,
		PaymentMethod:     method,
		Description:       fmt.Sprintf("Repayment for loan %s installment %d", loan.LoanNumber, installmentNumber),
		TransactionDate:   paidAt,
		AuditFields:       audit,
	})

	for i, c := range credits {
		transactions = append(transactions, domain.Transaction{
			TransactionID:     uuid.NewString(),
			TransactionNumber: numbers[i+1],
			TransactionType:   c.Type,
			Amount:            c.Amount,
			LoanID:            &loanID,
			ClientID:          c.ClientID,
			SavingsAccountID:  c.SavingsAccountID,
			Description:       creditDescription(c.Type, loan.LoanNumber),
			TransactionDate:   paidAt,
			AuditFields:       audit,
		})
	}
	return transactions, nil
}

func creditDescription(txType domain.TransactionType, loanNumber string) string {
	switch txType {
	case domain.TxPersonalInterestPayment:
		return "Interest credited from own loan " + loanNumber
	case domain.TxGeneralInterest:
		return "General interest share from loan " + loanNumber
	case domain.TxAdminInterest:
		return "Administrative interest share from loan " + loanNumber
	default:
		return "Interest from loan " + loanNumber
	}
}

// savingsCredits sums credit amounts per savings account.
func savingsCredits(credits []distribution.Credit) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, c := range credits {
		if c.SavingsAccountID == nil {
			continue
		}
		balances[*c.SavingsAccountID] = balances[*c.SavingsAccountID].Add(c.Amount)
	}
	return balances
}

// clientName is informational; lookups that fail leave the receipt name empty.
func (s *repaymentService) clientName(ctx context.Context, clientID string) string {
	if s.clientRepo == nil {
		return ""
	}
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogWarn(ctx, "Client lookup for receipt failed", slog.String("client_id", clientID), slog.String("error", err.Error()))
		return ""
	}
	return client.FullName()
}
