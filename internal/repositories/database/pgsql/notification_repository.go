package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/SscSPs/microfinance_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotification stores a notification outside of any business transaction.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)
	query := `
		INSERT INTO notifications (notification_id, user_id, title, message, kind, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID,
		m.UserID,
		m.Title,
		m.Message,
		m.Kind,
		m.IsRead,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", m.NotificationID, err)
	}
	return nil
}
