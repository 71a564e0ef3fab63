package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEvent_Payload(t *testing.T) {
	bookId := uuid.New()
	at := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	e := LedgerEvent{
		Type:       RecordCreated,
		UserId:     uuid.New(),
		BookId:     &bookId,
		EntityType: EntityRecord,
		EntityId:   uuid.New(),
		Data:       map[string]interface{}{"amount": "100"},
		OccurredAt: at,
	}

	p := e.Payload()
	assert.Equal(t, RecordCreated, e.EventType())
	assert.Equal(t, at, e.Timestamp())
	assert.Equal(t, bookId, p["book_id"])
	assert.Equal(t, "100", p["amount"])
	assert.Equal(t, EntityRecord, p["entity_type"])
}

func TestLedgerEvent_PayloadWithoutBook(t *testing.T) {
	e := LedgerEvent{Type: BookDeleted, EntityType: EntityBook, EntityId: uuid.New()}

	_, ok := e.Payload()["book_id"]
	assert.False(t, ok)
}
