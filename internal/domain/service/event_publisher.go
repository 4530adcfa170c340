package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// Event is an asynchronous domain event handed to the review worker.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	UserID     string          `json:"user_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// NewEvent builds an event with a fresh sortable id. payload may be nil.
func NewEvent(eventType, userID, requestID string, payload any) (*Event, error) {
	event := &Event{
		ID:         xid.New().String(),
		Type:       eventType,
		RequestID:  requestID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "marshal event payload")
		}
		event.Payload = raw
	}

	return event, nil
}

// ScrapeRequestedPayload is the payload of a review.scrape_requested event.
type ScrapeRequestedPayload struct {
	GoogleMapsURL string `json:"google_maps_url"`
	MaxReviews    int    `json:"max_reviews,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish hands the event to the configured transport.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
