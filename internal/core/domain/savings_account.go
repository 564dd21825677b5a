package domain

import "github.com/shopspring/decimal"

// SavingsStatus is the state of a savings account.
type SavingsStatus string

const (
	SavingsActive  SavingsStatus = "active"
	SavingsDormant SavingsStatus = "dormant"
	SavingsClosed  SavingsStatus = "closed"
)

// SavingsAccount is read and credited during interest distribution.
type SavingsAccount struct {
	SavingsAccountID string          `json:"savingsAccountID"`
	AccountNumber    string          `json:"accountNumber"`
	ClientID         string          `json:"clientID"`
	Balance          decimal.Decimal `json:"balance"`
	Status           SavingsStatus   `json:"status"`
	AuditFields
}
