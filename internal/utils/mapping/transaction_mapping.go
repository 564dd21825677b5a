package mapping

import (
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		TransactionNumber: d.TransactionNumber,
		TransactionType:   string(d.TransactionType),
		Amount:            d.Amount,
		LoanID:            d.LoanID,
		ClientID:          d.ClientID,
		SavingsAccountID:  d.SavingsAccountID,
		PaymentMethod:     optionalString(d.PaymentMethod),
		Description:       d.Description,
		TransactionDate:   d.TransactionDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		TransactionNumber: m.TransactionNumber,
		TransactionType:   domain.TransactionType(m.TransactionType),
		Amount:            m.Amount,
		LoanID:            m.LoanID,
		ClientID:          m.ClientID,
		SavingsAccountID:  m.SavingsAccountID,
		PaymentMethod:     derefString(m.PaymentMethod),
		Description:       m.Description,
		TransactionDate:   m.TransactionDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
