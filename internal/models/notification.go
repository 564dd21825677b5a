package models

import "time"

type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Kind           string    `db:"kind"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
