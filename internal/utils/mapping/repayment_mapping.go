package mapping

import (
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/models"
)

// ToModelLoanRepayment converts a domain LoanRepayment to a model LoanRepayment
func ToModelLoanRepayment(d domain.LoanRepayment) models.LoanRepayment {
	return models.LoanRepayment{
		RepaymentID:       d.RepaymentID,
		LoanID:            d.LoanID,
		InstallmentNumber: d.InstallmentNumber,
		DueDate:           d.DueDate,
		Amount:            d.Amount,
		PrincipalAmount:   d.PrincipalAmount,
		InterestAmount:    d.InterestAmount,
		PenaltyAmount:     d.PenaltyAmount,
		PaidAmount:        d.PaidAmount,
		PaidPrincipal:     d.PaidPrincipal,
		PaidInterest:      d.PaidInterest,
		Status:            string(d.Status),
		PaymentDate:       d.PaymentDate,
		PaymentMethod:     optionalString(d.PaymentMethod),
		TransactionID:     d.TransactionID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoanRepayment converts a model LoanRepayment to a domain LoanRepayment
func ToDomainLoanRepayment(m models.LoanRepayment) domain.LoanRepayment {
	return domain.LoanRepayment{
		RepaymentID:       m.RepaymentID,
		LoanID:            m.LoanID,
		InstallmentNumber: m.InstallmentNumber,
		DueDate:           m.DueDate,
		Amount:            m.Amount,
		PrincipalAmount:   m.PrincipalAmount,
		InterestAmount:    m.InterestAmount,
		PenaltyAmount:     m.PenaltyAmount,
		PaidAmount:        m.PaidAmount,
		PaidPrincipal:     m.PaidPrincipal,
		PaidInterest:      m.PaidInterest,
		Status:            domain.InstallmentStatus(m.Status),
		PaymentDate:       m.PaymentDate,
		PaymentMethod:     derefString(m.PaymentMethod),
		TransactionID:     m.TransactionID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoanRepaymentSlice converts a slice of model LoanRepayments to domain LoanRepayments
func ToDomainLoanRepaymentSlice(ms []models.LoanRepayment) []domain.LoanRepayment {
	ds := make([]domain.LoanRepayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoanRepayment(m)
	}
	return ds
}

// optionalString maps "" to NULL.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
