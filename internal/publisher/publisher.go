// Package publisher emits change events after collection writes. Events are
// best-effort notifications for downstream consumers (mail, exports, audit);
// a failed publish never rolls back or fails the originating mutation.
package publisher

import (
	"context"
	"time"
)

// Change event actions.
const (
	ActionCreated           = "created"
	ActionUpdated           = "updated"
	ActionStatusChanged     = "status_changed"
	ActionDeleted           = "deleted"
	ActionFeedbackSubmitted = "feedback_submitted"
)

// Event describes one mutation applied to a collection.
type Event struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher defines the interface for publishing change events.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event *Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
