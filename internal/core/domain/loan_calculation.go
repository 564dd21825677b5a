package domain

import "github.com/shopspring/decimal"

// LoanCalculation is the derived money view of a loan before it is persisted.
type LoanCalculation struct {
	LoanType                 LoanType         `json:"loanType"`
	LoanAmount               decimal.Decimal  `json:"loanAmount"`
	Principal                decimal.Decimal  `json:"principal"`
	UpfrontPercentage        decimal.Decimal  `json:"upfrontPercentage"`
	UpfrontAmount            decimal.Decimal  `json:"upfrontAmount"`
	InterestRate             decimal.Decimal  `json:"interestRate"`
	InterestMethod           InterestMethod   `json:"interestMethod"`
	PaymentFrequency         PaymentFrequency `json:"paymentFrequency"`
	TermMonths               int              `json:"termMonths"`
	DefaultChargesPercentage decimal.Decimal  `json:"defaultChargesPercentage"`
	DefaultChargesAmount     decimal.Decimal  `json:"defaultChargesAmount"`
	TotalInterest            decimal.Decimal  `json:"totalInterest"`
	TotalAmount              decimal.Decimal  `json:"totalAmount"`
	OutstandingBalance       decimal.Decimal  `json:"outstandingBalance"`
	MonthlyPayment           decimal.Decimal  `json:"monthlyPayment"`
	Schedule                 []ScheduleEntry  `json:"schedule"`
}
