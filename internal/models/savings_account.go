package models

import "github.com/shopspring/decimal"

// SavingsAccount is a row of the savings_accounts table.
type SavingsAccount struct {
	SavingsAccountID string          `db:"savings_account_id"`
	AccountNumber    string          `db:"account_number"`
	ClientID         string          `db:"client_id"`
	Balance          decimal.Decimal `db:"balance"`
	Status           string          `db:"status"`
	AuditFields
}
