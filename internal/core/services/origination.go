package services

import (
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/amortization"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/dto"
	"github.com/SscSPs/microfinance_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// calculateLoan prices a loan from its terms and the loan type policy.
// Nothing is persisted; start is the date installments are counted from.
func calculateLoan(req dto.LoanTermsRequest, start time.Time) (*domain.LoanCalculation, error) {
	if err := accounting.ValidateLoanParameters(req.LoanAmount, req.TermMonths); err != nil {
		return nil, err
	}

	cfg := domain.GetLoanTypeConfig(req.LoanType)

	upfrontPercentage := cfg.UpfrontPercentage
	if req.UpfrontPercentage != nil {
		upfrontPercentage = *req.UpfrontPercentage
	}
	upfrontAmount := accounting.CalculateUpfrontAmount(req.LoanAmount, upfrontPercentage)
	principal := accounting.CalculatePrincipalAmount(req.LoanAmount, upfrontAmount)

	interestRate := cfg.InterestRate
	if req.InterestRate != nil {
		interestRate = *req.InterestRate
	}

	method := cfg.InterestMethod
	if req.InterestMethod != "" {
		method = domain.ParseInterestMethod(req.InterestMethod)
	}

	frequency := domain.FrequencyMonthly
	if req.PaymentFrequency != "" {
		frequency = domain.PaymentFrequency(req.PaymentFrequency)
	}

	chargesPercentage := decimal.Zero
	if cfg.HasDefaultCharges && req.DefaultChargesPercentage != nil {
		chargesPercentage = *req.DefaultChargesPercentage
	}
	chargesAmount := accounting.PercentOf(principal, chargesPercentage)

	// Zero-rate personal loans are paid for entirely by the upfront deduction.
	// The check is on the requested type name, not the resolved policy.
	upfrontIsInterest := req.LoanType == domain.LoanTypePersonal && interestRate.IsZero()

	scheduleRate := interestRate
	if upfrontIsInterest {
		scheduleRate = decimal.Zero
	}
	schedule, err := amortization.GenerateRepaymentSchedule(amortization.Params{
		Principal:  principal,
		AnnualRate: scheduleRate,
		TermMonths: req.TermMonths,
		Frequency:  frequency,
		StartDate:  start,
	}, method)
	if err != nil {
		return nil, err
	}

	var totalInterest, totalAmount decimal.Decimal
	if upfrontIsInterest {
		totalInterest = upfrontAmount
		totalAmount = req.LoanAmount
		schedule.TotalInterest = totalInterest
		schedule.TotalAmount = totalAmount
	} else {
		totalInterest = schedule.TotalInterest
		totalAmount = schedule.TotalAmount.Add(chargesAmount)
	}

	return &domain.LoanCalculation{
		LoanType:                 req.LoanType,
		LoanAmount:               req.LoanAmount,
		Principal:                principal,
		UpfrontPercentage:        upfrontPercentage,
		UpfrontAmount:            upfrontAmount,
		InterestRate:             interestRate,
		InterestMethod:           method,
		PaymentFrequency:         frequency,
		TermMonths:               req.TermMonths,
		DefaultChargesPercentage: chargesPercentage,
		DefaultChargesAmount:     chargesAmount,
		TotalInterest:            totalInterest,
		TotalAmount:              totalAmount,
		OutstandingBalance:       principal.Add(totalInterest).Add(chargesAmount),
		MonthlyPayment:           schedule.MonthlyPayment,
		Schedule:                 schedule.Entries,
	}, nil
}

// repaymentRows turns schedule entries into pending installment rows for a loan.
func repaymentRows(loanID string, entries []domain.ScheduleEntry, idFn func() string, audit domain.AuditFields) []domain.LoanRepayment {
	rows := make([]domain.LoanRepayment, len(entries))
	for i, e := range entries {
		rows[i] = domain.LoanRepayment{
			RepaymentID:       idFn(),
			LoanID:            loanID,
			InstallmentNumber: e.InstallmentNumber,
			DueDate:           e.DueDate,
			Amount:            e.TotalPayment,
			PrincipalAmount:   e.PrincipalAmount,
			InterestAmount:    e.InterestAmount,
			PenaltyAmount:     decimal.Zero,
			PaidAmount:        decimal.Zero,
			PaidPrincipal:     decimal.Zero,
			PaidInterest:      decimal.Zero,
			Status:            domain.InstallmentPending,
			AuditFields:       audit,
		}
	}
	return rows
}
