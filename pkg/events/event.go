package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RECORD_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	BookCreated     = "BOOK_CREATED"
	BookUpdated     = "BOOK_UPDATED"
	BookDeleted     = "BOOK_DELETED"
	CategoryCreated = "CATEGORY_CREATED"
	CategoryUpdated = "CATEGORY_UPDATED"
	CategoryDeleted = "CATEGORY_DELETED"
	RecordCreated   = "RECORD_CREATED"
	RecordUpdated   = "RECORD_UPDATED"
	RecordDeleted   = "RECORD_DELETED"
)

const (
	EntityBook     = "book"
	EntityCategory = "category"
	EntityRecord   = "record"
)

// LedgerEvent describes one successful mutation inside a user's ledger. It is
// also the wire format on the in-process bus.
type LedgerEvent struct {
	Type       string                 `json:"type"`
	UserId     uuid.UUID              `json:"user_id"`
	BookId     *uuid.UUID             `json:"book_id,omitempty"`
	EntityType string                 `json:"entity_type"`
	EntityId   uuid.UUID              `json:"entity_id"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e LedgerEvent) EventType() string {
	return e.Type
}

func (e LedgerEvent) Payload() map[string]interface{} {
	payload := map[string]interface{}{
		"user_id":     e.UserId,
		"entity_type": e.EntityType,
		"entity_id":   e.EntityId,
		"occurred_at": e.OccurredAt,
	}
	if e.BookId != nil {
		payload["book_id"] = *e.BookId
	}
	for k, v := range e.Data {
		payload[k] = v
	}
	return payload
}

func (e LedgerEvent) Timestamp() time.Time {
	return e.OccurredAt
}
