package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions ledger. Rows are insert-only.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	TransactionNumber string          `db:"transaction_number"`
	TransactionType   string          `db:"transaction_type"`
	Amount            decimal.Decimal `db:"amount"`
	LoanID            *string         `db:"loan_id"`
	ClientID          *string         `db:"client_id"`
	SavingsAccountID  *string         `db:"savings_account_id"`
	PaymentMethod     *string         `db:"payment_method"`
	Description       string          `db:"description"`
	TransactionDate   time.Time       `db:"transaction_date"`
	AuditFields
}
