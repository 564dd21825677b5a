package amortization

import (
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// DecliningBalance charges interest each period on the remaining principal with a fixed EMI.
type DecliningBalance struct{}

func (DecliningBalance) Method() domain.InterestMethod {
	return domain.InterestDecliningBalance
}

func (DecliningBalance) Generate(p Params) (domain.Schedule, error) {
	n, err := prepare(p)
	if err != nil {
		return domain.Schedule{}, err
	}

	rate := accounting.PeriodicRate(p.AnnualRate, p.Frequency)
	payment := accounting.EMI(p.Principal, rate, n)

	entries := make([]domain.ScheduleEntry, 0, n)
	balance := p.Principal
	totalInterest := decimal.Zero

	for i := 1; i <= n; i++ {
		interest := accounting.Round2(balance.Mul(rate))
		principal := payment.Sub(interest)
		if i == n {
			// last installment pays off whatever is left
			principal = balance
		}
		principal = decimal.Min(principal, balance)

		balance = decimal.Max(decimal.Zero, balance.Sub(principal))
		totalInterest = totalInterest.Add(interest)

		entries = append(entries, domain.ScheduleEntry{
			InstallmentNumber:  i,
			DueDate:            DueDate(p.StartDate, p.Frequency, i),
			PrincipalAmount:    principal,
			InterestAmount:     interest,
			TotalPayment:       principal.Add(interest),
			OutstandingBalance: balance,
			Status:             domain.InstallmentPending,
		})
	}

	totalInterest = accounting.Round2(totalInterest)
	return domain.Schedule{
		Entries:        entries,
		TotalInterest:  totalInterest,
		TotalAmount:    accounting.Round2(p.Principal.Add(totalInterest)),
		MonthlyPayment: payment,
	}, nil
}
