package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/microfinance_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// Event names sent to the analytics tracker.
const (
	EventLoanOriginated      = "loan_originated"
	EventLoanStatusChanged   = "loan_status_changed"
	EventLoanRepaymentPosted = "loan_repayment_posted"
)

const (
	notificationKindLoan      = "loan"
	notificationKindRepayment = "repayment"
)

// EventTracker receives product analytics events. The posthog client wrapper satisfies it.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// sideEffects bundles the informational follow-ups of loan operations.
type sideEffects struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
	events           EventTracker
}

func (e sideEffects) notify(ctx context.Context, userID, kind, title, message string, now time.Time) error {
	if e.notificationRepo == nil {
		return nil
	}
	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          title,
		Message:        message,
		Kind:           kind,
		CreatedAt:      now,
	}
	if err := e.notificationRepo.SaveNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// track is fire-and-forget; the tracker queues and ships events on its own.
func (e sideEffects) track(distinctID, event string, props map[string]any) {
	if e.events == nil {
		return
	}
	e.events.Enqueue(distinctID, event, props)
}
