package amortization_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/SscSPs/microfinance_backend/internal/core/amortization"
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sumOf(entries []domain.ScheduleEntry, pick func(domain.ScheduleEntry) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(pick(e))
	}
	return total
}

func principalOf(e domain.ScheduleEntry) decimal.Decimal { return e.PrincipalAmount }
func interestOf(e domain.ScheduleEntry) decimal.Decimal { return e.InterestAmount }

func TestForMethod(t *testing.T) {
	assert.Equal(t, domain.InterestFlat, amortization.ForMethod(domain.InterestFlat).Method())
	assert.Equal(t, domain.InterestDecliningBalance, amortization.ForMethod(domain.InterestDecliningBalance).Method())
	assert.Equal(t, domain.InterestDecliningBalance, amortization.ForMethod("").Method())
	assert.Equal(t, domain.InterestDecliningBalance, amortization.ForMethod("reducing").Method())
	assert.IsType(t, amortization.DecliningBalance{}, amortization.ForMethod(domain.InterestMethod("mystery")))
}

func TestDecliningBalance_MonthlyScenario(t *testing.T) {
	s, err := amortization.GenerateRepaymentSchedule(amortization.Params{
		Principal:  dec("1000"),
		AnnualRate: dec("12"),
		TermMonths: 12,
		Frequency:  domain.FrequencyMonthly,
		StartDate:  start,
	}, domain.InterestDecliningBalance)
	require.NoError(t, err)
	require.Len(t, s.Entries, 12)

	assert.Equal(t, "88.85", s.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "66.19", s.TotalInterest.StringFixed(2))
	assert.Equal(t, "1066.19", s.TotalAmount.StringFixed(2))

	first := s.Entries[0]
	assert.Equal(t, 1, first.InstallmentNumber)
	assert.Equal(t, "10.00", first.InterestAmount.StringFixed(2))
	assert.Equal(t, "78.85", first.PrincipalAmount.StringFixed(2))
	assert.Equal(t, "921.15", first.OutstandingBalance.StringFixed(2))
	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), first.DueDate)
	assert.Equal(t, domain.InstallmentPending, first.Status)

	last := s.Entries[11]
	assert.Equal(t, 12, last.InstallmentNumber)
	assert.Equal(t, "87.96", last.PrincipalAmount.StringFixed(2))
	assert.Equal(t, "0.88", last.InterestAmount.StringFixed(2))
	assert.Equal(t, "88.84", last.TotalPayment.StringFixed(2))
	assert.True(t, last.OutstandingBalance.IsZero())
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), last.DueDate)

	assert.True(t, sumOf(s.Entries, principalOf).Equal(dec("1000")))
	assert.True(t, sumOf(s.Entries, interestOf).Equal(s.TotalInterest))
}

func TestDecliningBalance_Completeness(t *testing.T) {
	cases := []amortization.Params{
		{Principal: dec("5000"), AnnualRate: dec("18"), TermMonths: 12, Frequency: domain.FrequencyWeekly},
		{Principal: dec("2500.50"), AnnualRate: dec("15"), TermMonths: 6, Frequency: domain.FrequencyBiweekly},
		{Principal: dec("12000"), AnnualRate: dec("24"), TermMonths: 36, Frequency: domain.FrequencyMonthly},
		{Principal: dec("750"), AnnualRate: dec("8"), TermMonths: 24, Frequency: domain.FrequencyQuarterly},
		{Principal: dec("300"), AnnualRate: dec("36.5"), TermMonths: 1, Frequency: domain.FrequencyDaily},
	}

	for _, p := range cases {
		p.StartDate = start
		s, err := amortization.DecliningBalance{}.Generate(p)
		require.NoError(t, err)

		last := s.Entries[len(s.Entries)-1]
		assert.True(t, last.OutstandingBalance.IsZero(), "final balance for %+v", p)
		diff := sumOf(s.Entries, principalOf).Sub(p.Principal).Abs()
		assert.True(t, diff.LessThanOrEqual(dec("0.01")), "principal drift %s", diff)

		prev := p.Principal
		for _, e := range s.Entries {
			assert.True(t, e.OutstandingBalance.LessThanOrEqual(prev))
			assert.False(t, e.PrincipalAmount.IsNegative())
			prev = e.OutstandingBalance
		}
	}
}

func TestDecliningBalance_WeeklyTotals(t *testing.T) {
	s, err := amortization.DecliningBalance{}.Generate(amortization.Params{
		Principal:  dec("5000"),
		AnnualRate: dec("18"),
		TermMonths: 12,
		Frequency:  domain.FrequencyWeekly,
		StartDate:  start,
	})
	require.NoError(t, err)
	require.Len(t, s.Entries, 52)
	assert.Equal(t, "105.23", s.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "472.16", s.TotalInterest.StringFixed(2))
	assert.Equal(t, start.AddDate(0, 0, 7), s.Entries[0].DueDate)
}

func TestDecliningBalance_ZeroRate(t *testing.T) {
	s, err := amortization.DecliningBalance{}.Generate(amortization.Params{
		Principal:  dec("1000"),
		AnnualRate: decimal.Zero,
		TermMonths: 3,
		Frequency:  domain.FrequencyMonthly,
		StartDate:  start,
	})
	require.NoError(t, err)
	require.Len(t, s.Entries, 3)

	for _, e := range s.Entries {
		assert.True(t, e.InterestAmount.IsZero())
	}
	assert.Equal(t, "333.33", s.Entries[0].PrincipalAmount.StringFixed(2))
	assert.Equal(t, "333.33", s.Entries[1].PrincipalAmount.StringFixed(2))
	assert.Equal(t, "333.34", s.Entries[2].PrincipalAmount.StringFixed(2))
	assert.True(t, s.TotalInterest.IsZero())
	assert.Equal(t, "1000.00", s.TotalAmount.StringFixed(2))
}

func TestDecliningBalance_SingleInstallment(t *testing.T) {
	s, err := amortization.DecliningBalance{}.Generate(amortization.Params{
		Principal:  dec("1000"),
		AnnualRate: dec("12"),
		TermMonths: 6,
		Frequency:  domain.FrequencyYearly,
		StartDate:  start,
	})
	require.NoError(t, err)
	require.Len(t, s.Entries, 1)

	only := s.Entries[0]
	assert.Equal(t, "1000.00", only.PrincipalAmount.StringFixed(2))
	assert.Equal(t, "120.00", only.InterestAmount.StringFixed(2))
	assert.True(t, only.TotalPayment.Equal(only.PrincipalAmount.Add(s.TotalInterest)))
	assert.True(t, only.OutstandingBalance.IsZero())
	assert.Equal(t, start.AddDate(1, 0, 0), only.DueDate)
}

func TestFlatRate_Scenario(t *testing.T) {
	s, err := amortization.GenerateRepaymentSchedule(amortization.Params{
		Principal:  dec("1000"),
		AnnualRate: dec("10"),
		TermMonths: 10,
		Frequency:  domain.FrequencyMonthly,
		StartDate:  start,
	}, domain.InterestFlat)
	require.NoError(t, err)
	require.Len(t, s.Entries, 10)

	assert.Equal(t, "100.00", s.TotalInterest.StringFixed(2))
	assert.Equal(t, "1100.00", s.TotalAmount.StringFixed(2))
	assert.Equal(t, "110.00", s.MonthlyPayment.StringFixed(2))
	for _, e := range s.Entries {
		assert.Equal(t, "110.00", e.TotalPayment.StringFixed(2))
		assert.Equal(t, "100.00", e.PrincipalAmount.StringFixed(2))
		assert.Equal(t, "10.00", e.InterestAmount.StringFixed(2))
	}
	assert.Equal(t, "990.00", s.Entries[0].OutstandingBalance.StringFixed(2))
	assert.True(t, s.Entries[9].OutstandingBalance.IsZero())
}

func TestFlatRate_LastInstallmentAbsorbsResidue(t *testing.T) {
	s, err := amortization.FlatRate{}.Generate(amortization.Params{
		Principal:  dec("1000"),
		AnnualRate: dec("5"),
		TermMonths: 3,
		Frequency:  domain.FrequencyMonthly,
		StartDate:  start,
	})
	require.NoError(t, err)
	require.Len(t, s.Entries, 3)

	assert.Equal(t, "333.33", s.Entries[0].PrincipalAmount.StringFixed(2))
	assert.Equal(t, "16.67", s.Entries[0].InterestAmount.StringFixed(2))
	assert.Equal(t, "333.34", s.Entries[2].PrincipalAmount.StringFixed(2))
	assert.Equal(t, "16.66", s.Entries[2].InterestAmount.StringFixed(2))

	assert.True(t, sumOf(s.Entries, principalOf).Equal(dec("1000")))
	assert.True(t, sumOf(s.Entries, interestOf).Equal(dec("50")))
	assert.True(t, s.Entries[2].OutstandingBalance.IsZero())
}

func TestFlatRate_ZeroRate(t *testing.T) {
	s, err := amortization.FlatRate{}.Generate(amortization.Params{
		Principal:  dec("900"),
		AnnualRate: decimal.Zero,
		TermMonths: 12,
		Frequency:  domain.FrequencyMonthly,
		StartDate:  start,
	})
	require.NoError(t, err)
	require.Len(t, s.Entries, 12)
	for _, e := range s.Entries {
		assert.True(t, e.InterestAmount.IsZero())
		assert.Equal(t, "75.00", e.PrincipalAmount.StringFixed(2))
	}
}

func TestGenerate_InvalidParameters(t *testing.T) {
	bad := []amortization.Params{
		{Principal: decimal.Zero, AnnualRate: dec("10"), TermMonths: 12},
		{Principal: dec("-1"), AnnualRate: dec("10"), TermMonths: 12},
		{Principal: dec("100"), AnnualRate: dec("10"), TermMonths: 0},
		{Principal: dec("100.005"), AnnualRate: dec("10"), TermMonths: 12},
	}
	for _, p := range bad {
		for _, g := range []amortization.Generator{amortization.DecliningBalance{}, amortization.FlatRate{}} {
			_, err := g.Generate(p)
			assert.ErrorIs(t, err, apperrors.ErrInvalidLoanParameters)
		}
	}
}

func TestDueDate(t *testing.T) {
	assert.Equal(t, start.AddDate(0, 0, 3), amortization.DueDate(start, domain.FrequencyDaily, 3))
	assert.Equal(t, start.AddDate(0, 0, 14), amortization.DueDate(start, domain.FrequencyWeekly, 2))
	assert.Equal(t, start.AddDate(0, 0, 28), amortization.DueDate(start, domain.FrequencyBiweekly, 2))
	assert.Equal(t, start.AddDate(0, 6, 0), amortization.DueDate(start, domain.FrequencyQuarterly, 2))
	assert.Equal(t, start.AddDate(2, 0, 0), amortization.DueDate(start, domain.FrequencyLumpSum, 2))
	assert.Equal(t, start.AddDate(0, 2, 0), amortization.DueDate(start, "unknown", 2))
}

func TestSchedule_JSONRoundTrip(t *testing.T) {
	s, err := amortization.DecliningBalance{}.Generate(amortization.Params{
		Principal:  dec("1000"),
		AnnualRate: dec("12"),
		TermMonths: 12,
		Frequency:  domain.FrequencyMonthly,
		StartDate:  start,
	})
	require.NoError(t, err)

	raw, err := json.Marshal(s.Entries)
	require.NoError(t, err)

	var decoded []domain.ScheduleEntry
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, len(s.Entries))
	for i := range decoded {
		assert.True(t, decoded[i].PrincipalAmount.Equal(s.Entries[i].PrincipalAmount))
		assert.True(t, decoded[i].InterestAmount.Equal(s.Entries[i].InterestAmount))
		assert.True(t, decoded[i].OutstandingBalance.Equal(s.Entries[i].OutstandingBalance))
		assert.True(t, decoded[i].DueDate.Equal(s.Entries[i].DueDate))
	}

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(again))
}
