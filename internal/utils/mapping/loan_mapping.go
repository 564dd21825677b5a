package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan, encoding the schedule snapshot as JSON.
func ToModelLoan(d domain.Loan) (models.Loan, error) {
	schedule := d.RepaymentSchedule
	if schedule == nil {
		schedule = []domain.ScheduleEntry{}
	}
	raw, err := json.Marshal(schedule)
	if err != nil {
		return models.Loan{}, fmt.Errorf("failed to encode repayment schedule for loan %s: %w", d.LoanID, err)
	}

	return models.Loan{
		LoanID:                   d.LoanID,
		LoanNumber:               d.LoanNumber,
		ClientID:                 d.ClientID,
		LoanType:                 string(d.LoanType),
		Amount:                   d.Amount,
		PrincipalAmount:          d.PrincipalAmount,
		InterestRate:             d.InterestRate,
		TermMonths:               d.TermMonths,
		InterestMethod:           string(d.InterestMethod),
		PaymentFrequency:         string(d.PaymentFrequency),
		UpfrontPercentage:        d.UpfrontPercentage,
		UpfrontAmount:            d.UpfrontAmount,
		DefaultChargesPercentage: d.DefaultChargesPercentage,
		DefaultChargesAmount:     d.DefaultChargesAmount,
		OutstandingBalance:       d.OutstandingBalance,
		TotalPaid:                d.TotalPaid,
		TotalInterest:            d.TotalInterest,
		TotalAmount:              d.TotalAmount,
		MonthlyPayment:           d.MonthlyPayment,
		Status:                   string(d.Status),
		DisbursementDate:         d.DisbursementDate,
		RepaymentSchedule:        raw,
		AuditFields:              ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainLoan converts a model Loan to a domain Loan. A NULL or empty schedule column
// yields an empty schedule.
func ToDomainLoan(m models.Loan) (domain.Loan, error) {
	var schedule []domain.ScheduleEntry
	if len(m.RepaymentSchedule) > 0 {
		if err := json.Unmarshal(m.RepaymentSchedule, &schedule); err != nil {
			return domain.Loan{}, fmt.Errorf("failed to decode repayment schedule for loan %s: %w", m.LoanID, err)
		}
	}

	return domain.Loan{
		LoanID:                   m.LoanID,
		LoanNumber:               m.LoanNumber,
		ClientID:                 m.ClientID,
		LoanType:                 domain.LoanType(m.LoanType),
		Amount:                   m.Amount,
		PrincipalAmount:          m.PrincipalAmount,
		InterestRate:             m.InterestRate,
		TermMonths:               m.TermMonths,
		InterestMethod:           domain.InterestMethod(m.InterestMethod),
		PaymentFrequency:         domain.PaymentFrequency(m.PaymentFrequency),
		UpfrontPercentage:        m.UpfrontPercentage,
		UpfrontAmount:            m.UpfrontAmount,
		DefaultChargesPercentage: m.DefaultChargesPercentage,
		DefaultChargesAmount:     m.DefaultChargesAmount,
		OutstandingBalance:       m.OutstandingBalance,
		TotalPaid:                m.TotalPaid,
		TotalInterest:            m.TotalInterest,
		TotalAmount:              m.TotalAmount,
		MonthlyPayment:           m.MonthlyPayment,
		Status:                   domain.LoanStatus(m.Status),
		DisbursementDate:         m.DisbursementDate,
		RepaymentSchedule:        schedule,
		AuditFields:              ToDomainAuditFields(m.AuditFields),
	}, nil
}
