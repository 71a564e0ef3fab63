package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLog is the persisted trail of ledger mutations, written by the
// activity consumer.
type ActivityLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventType  string         `gorm:"type:varchar(50);not null;index"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	BookId     *uuid.UUID     `gorm:"type:uuid;index"`
	EntityType string         `gorm:"type:varchar(20);not null"`
	EntityId   uuid.UUID      `gorm:"type:uuid;not null"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	OccurredAt time.Time      `gorm:"not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
