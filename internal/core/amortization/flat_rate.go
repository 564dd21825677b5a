package amortization

import (
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FlatRate computes interest once on the original principal and spreads it evenly.
// The rate is applied to the whole principal regardless of term.
type FlatRate struct{}

func (FlatRate) Method() domain.InterestMethod {
	return domain.InterestFlat
}

func (FlatRate) Generate(p Params) (domain.Schedule, error) {
	n, err := prepare(p)
	if err != nil {
		return domain.Schedule{}, err
	}

	count := decimal.NewFromInt(int64(n))
	totalInterest := accounting.PercentOf(p.Principal, p.AnnualRate)
	totalAmount := p.Principal.Add(totalInterest)

	principalEach := accounting.Round2(p.Principal.Div(count))
	interestEach := accounting.Round2(totalInterest.Div(count))

	entries := make([]domain.ScheduleEntry, 0, n)
	principalLeft := p.Principal
	interestLeft := totalInterest
	owed := totalAmount

	for i := 1; i <= n; i++ {
		principal, interest := principalEach, interestEach
		if i == n {
			principal, interest = principalLeft, interestLeft
		}
		principal = decimal.Min(principal, principalLeft)
		interest = decimal.Min(interest, interestLeft)

		principalLeft = principalLeft.Sub(principal)
		interestLeft = interestLeft.Sub(interest)
		payment := principal.Add(interest)
		owed = decimal.Max(decimal.Zero, owed.Sub(payment))

		entries = append(entries, domain.ScheduleEntry{
			InstallmentNumber:  i,
			DueDate:            DueDate(p.StartDate, p.Frequency, i),
			PrincipalAmount:    principal,
			InterestAmount:     interest,
			TotalPayment:       payment,
			OutstandingBalance: owed,
			Status:             domain.InstallmentPending,
		})
	}

	return domain.Schedule{
		Entries:        entries,
		TotalInterest:  totalInterest,
		TotalAmount:    totalAmount,
		MonthlyPayment: accounting.Round2(totalAmount.Div(count)),
	}, nil
}
