package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id         uuid.UUID
	EventType  string
	UserId     uuid.UUID
	BookId     *uuid.UUID
	EntityType string
	EntityId   uuid.UUID
	Details    map[string]interface{}
	OccurredAt time.Time
}
