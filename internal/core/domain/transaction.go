package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a monetary movement.
type TransactionType string

const (
	TxLoanPayment             TransactionType = "loan_payment"
	TxPersonalInterestPayment TransactionType = "personal_interest_payment"
	TxGeneralInterest         TransactionType = "general_interest"
	TxAdminInterest           TransactionType = "admin_interest"
)

// Transaction is an immutable ledger row. Rows are produced, never mutated.
type Transaction struct {
	TransactionID     string          `json:"transactionID"`
	TransactionNumber string          `json:"transactionNumber"`
	TransactionType   TransactionType `json:"transactionType"`
	Amount            decimal.Decimal `json:"amount"`
	LoanID            *string         `json:"loanID,omitempty"`
	ClientID          *string         `json:"clientID,omitempty"`
	SavingsAccountID  *string         `json:"savingsAccountID,omitempty"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	Description       string          `json:"description"`
	TransactionDate   time.Time       `json:"transactionDate"`
	AuditFields
}
