package repositories

import (
	"context"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
)

// NotificationWriter stores in-app notifications.
type NotificationWriter interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationWriter
}
