package entity

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	Id          uuid.UUID
	UserId      uuid.UUID // Owner
	Title       string
	Description string
	IsDeleted   bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
