package dto

import (
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanTermsRequest carries the inputs of a loan calculation.
// Optional fields fall back to the loan type's configuration.
type LoanTermsRequest struct {
	LoanAmount               decimal.Decimal  `json:"loanAmount"`
	LoanType                 domain.LoanType  `json:"loanType" binding:"required"` // unknown types are priced as personal
	UpfrontPercentage        *decimal.Decimal `json:"upfrontPercentage" binding:"omitempty,gte=0,lte=100"`
	InterestRate             *decimal.Decimal `json:"interestRate" binding:"omitempty,gte=0"`
	TermMonths               int              `json:"termMonths"`
	InterestMethod           string           `json:"interestMethod" binding:"omitempty,interest_method"`
	PaymentFrequency         string           `json:"paymentFrequency" binding:"omitempty,payment_frequency"`
	DisbursementDate         *time.Time       `json:"disbursementDate"` // schedule start, defaults to now
	DefaultChargesPercentage *decimal.Decimal `json:"defaultChargesPercentage" binding:"omitempty,gte=0,lte=100"`
}

// CreateLoanRequest defines the data needed to originate a loan.
type CreateLoanRequest struct {
	ClientID string `json:"clientID" binding:"required"`
	LoanTermsRequest
}

// UpdateLoanStatusRequest moves a loan through its lifecycle.
type UpdateLoanStatusRequest struct {
	Status domain.LoanStatus `json:"status" binding:"required,loan_status"`
}

// ScheduleEntryResponse is one installment of a schedule.
type ScheduleEntryResponse struct {
	InstallmentNumber  int                      `json:"installmentNumber"`
	DueDate            time.Time                `json:"dueDate"`
	PrincipalAmount    decimal.Decimal          `json:"principalAmount"`
	InterestAmount     decimal.Decimal          `json:"interestAmount"`
	TotalPayment       decimal.Decimal          `json:"totalPayment"`
	OutstandingBalance decimal.Decimal          `json:"outstandingBalance"`
	Status             domain.InstallmentStatus `json:"status"`
}

// LoanCalculationResponse is the preview returned by the calculate endpoint.
type LoanCalculationResponse struct {
	LoanType                 domain.LoanType         `json:"loanType"`
	LoanAmount               decimal.Decimal         `json:"loanAmount"`
	Principal                decimal.Decimal         `json:"principal"`
	UpfrontPercentage        decimal.Decimal         `json:"upfrontPercentage"`
	UpfrontAmount            decimal.Decimal         `json:"upfrontAmount"`
	InterestRate             decimal.Decimal         `json:"interestRate"`
	InterestMethod           domain.InterestMethod   `json:"interestMethod"`
	PaymentFrequency         domain.PaymentFrequency `json:"paymentFrequency"`
	TermMonths               int                     `json:"termMonths"`
	DefaultChargesAmount     decimal.Decimal         `json:"defaultChargesAmount"`
	DefaultChargesPercentage decimal.Decimal         `json:"defaultChargesPercentage"`
	TotalInterest            decimal.Decimal         `json:"totalInterest"`
	TotalAmount              decimal.Decimal         `json:"totalAmount"`
	OutstandingBalance       decimal.Decimal         `json:"outstandingBalance"`
	MonthlyPayment           decimal.Decimal         `json:"monthlyPayment"`
	Schedule                 []ScheduleEntryResponse `json:"schedule"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID               string                  `json:"loanID"`
	LoanNumber           string                  `json:"loanNumber"`
	ClientID             string                  `json:"clientID"`
	LoanType             domain.LoanType         `json:"loanType"`
	Amount               decimal.Decimal         `json:"amount"`
	PrincipalAmount      decimal.Decimal         `json:"principalAmount"`
	InterestRate         decimal.Decimal         `json:"interestRate"`
	TermMonths           int                     `json:"termMonths"`
	InterestMethod       domain.InterestMethod   `json:"interestMethod"`
	PaymentFrequency     domain.PaymentFrequency `json:"paymentFrequency"`
	UpfrontAmount        decimal.Decimal         `json:"upfrontAmount"`
	DefaultChargesAmount decimal.Decimal         `json:"defaultChargesAmount"`
	OutstandingBalance   decimal.Decimal         `json:"outstandingBalance"`
	TotalPaid            decimal.Decimal         `json:"totalPaid"`
	TotalInterest        decimal.Decimal         `json:"totalInterest"`
	TotalAmount          decimal.Decimal         `json:"totalAmount"`
	MonthlyPayment       decimal.Decimal         `json:"monthlyPayment"`
	Status               domain.LoanStatus       `json:"status"`
	DisbursementDate     *time.Time              `json:"disbursementDate,omitempty"`
	Schedule             []ScheduleEntryResponse `json:"schedule"`
	CreatedAt            time.Time               `json:"createdAt"`
	CreatedBy            string                  `json:"createdBy"`
	LastUpdatedAt        time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy        string                  `json:"lastUpdatedBy"`
}

// ToScheduleResponse converts schedule entries to their DTOs
func ToScheduleResponse(entries []domain.ScheduleEntry) []ScheduleEntryResponse {
	res := make([]ScheduleEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ScheduleEntryResponse{
			InstallmentNumber:  e.InstallmentNumber,
			DueDate:            e.DueDate,
			PrincipalAmount:    e.PrincipalAmount,
			InterestAmount:     e.InterestAmount,
			TotalPayment:       e.TotalPayment,
			OutstandingBalance: e.OutstandingBalance,
			Status:             e.Status,
		}
	}
	return res
}

// ToLoanCalculationResponse converts a domain.LoanCalculation to its DTO
func ToLoanCalculationResponse(calc *domain.LoanCalculation) LoanCalculationResponse {
	return LoanCalculationResponse{
		LoanType:                 calc.LoanType,
		LoanAmount:               calc.LoanAmount,
		Principal:                calc.Principal,
		UpfrontPercentage:        calc.UpfrontPercentage,
		UpfrontAmount:            calc.UpfrontAmount,
		InterestRate:             calc.InterestRate,
		InterestMethod:           calc.InterestMethod,
		PaymentFrequency:         calc.PaymentFrequency,
		TermMonths:               calc.TermMonths,
		DefaultChargesAmount:     calc.DefaultChargesAmount,
		DefaultChargesPercentage: calc.DefaultChargesPercentage,
		TotalInterest:            calc.TotalInterest,
		TotalAmount:              calc.TotalAmount,
		OutstandingBalance:       calc.OutstandingBalance,
		MonthlyPayment:           calc.MonthlyPayment,
		Schedule:                 ToScheduleResponse(calc.Schedule),
	}
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO
func ToLoanResponse(loan *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:               loan.LoanID,
		LoanNumber:           loan.LoanNumber,
		ClientID:             loan.ClientID,
		LoanType:             loan.LoanType,
		Amount:               loan.Amount,
		PrincipalAmount:      loan.PrincipalAmount,
		InterestRate:         loan.InterestRate,
		TermMonths:           loan.TermMonths,
		InterestMethod:       loan.InterestMethod,
		PaymentFrequency:     loan.PaymentFrequency,
		UpfrontAmount:        loan.UpfrontAmount,
		DefaultChargesAmount: loan.DefaultChargesAmount,
		OutstandingBalance:   loan.OutstandingBalance,
		TotalPaid:            loan.TotalPaid,
		TotalInterest:        loan.TotalInterest,
		TotalAmount:          loan.TotalAmount,
		MonthlyPayment:       loan.MonthlyPayment,
		Status:               loan.Status,
		DisbursementDate:     loan.DisbursementDate,
		Schedule:             ToScheduleResponse(loan.RepaymentSchedule),
		CreatedAt:            loan.CreatedAt,
		CreatedBy:            loan.CreatedBy,
		LastUpdatedAt:        loan.LastUpdatedAt,
		LastUpdatedBy:        loan.LastUpdatedBy,
	}
}
