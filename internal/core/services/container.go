package services

import (
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/core/distribution"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/microfinance_backend/internal/core/ports/services"
	"github.com/SscSPs/microfinance_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// tracker may be nil when analytics are disabled.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker EventTracker) (*portssvc.ServiceContainer, error) {
	strategy, err := distribution.New(distribution.Name(cfg.InterestDistributionStrategy))
	if err != nil {
		return nil, fmt.Errorf("invalid INTEREST_DISTRIBUTION_STRATEGY: %w", err)
	}
	partial, err := NewPartialPaymentPolicy(PartialPaymentMode(cfg.PartialPaymentMode))
	if err != nil {
		return nil, fmt.Errorf("invalid PARTIAL_PAYMENT_MODE: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	container.Loan = NewLoanService(
		repos.TxManager,
		repos.LoanRepo,
		repos.RepaymentRepo,
		WithLoanClientRepository(repos.ClientRepo),
		WithLoanNotifications(repos.NotificationRepo),
		WithLoanEventTracker(tracker),
	)

	container.Repayment = NewRepaymentService(
		repos.TxManager,
		repos.LoanRepo,
		repos.RepaymentRepo,
		repos.TransactionRepo,
		repos.SavingsRepo,
		WithDistributionStrategy(strategy),
		WithPartialPaymentPolicy(partial),
		WithRepaymentClientRepository(repos.ClientRepo),
		WithRepaymentNotifications(repos.NotificationRepo),
		WithRepaymentEventTracker(tracker),
	)

	return container, nil
}
