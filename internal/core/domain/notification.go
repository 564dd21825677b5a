package domain

import "time"

// Notification is an informational message shown on staff dashboards.
type Notification struct {
	NotificationID string    `json:"notificationID"`
	UserID         string    `json:"userID"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Kind           string    `json:"kind"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}
