package mapping

import (
	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	"github.com/SscSPs/microfinance_backend/internal/models"
)

func ToDomainSavingsAccount(m models.SavingsAccount) domain.SavingsAccount {
	return domain.SavingsAccount{
		SavingsAccountID: m.SavingsAccountID,
		AccountNumber:    m.AccountNumber,
		ClientID:         m.ClientID,
		Balance:          m.Balance,
		Status:           domain.SavingsStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainSavingsAccountSlice(ms []models.SavingsAccount) []domain.SavingsAccount {
	ds := make([]domain.SavingsAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSavingsAccount(m)
	}
	return ds
}

func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:     m.ClientID,
		ClientNumber: m.ClientNumber,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
	}
}

func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		Title:          d.Title,
		Message:        d.Message,
		Kind:           d.Kind,
		IsRead:         d.IsRead,
		CreatedAt:      d.CreatedAt,
	}
}
