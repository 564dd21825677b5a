package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager        TransactionManager
	LoanRepo         LoanRepositoryFacade
	RepaymentRepo    RepaymentRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	SavingsRepo      SavingsAccountRepositoryFacade
	ClientRepo       ClientRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
