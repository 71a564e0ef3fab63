package model

import (
	"time"

	"github.com/google/uuid"
)

// Book timestamps are written by the service layer, never by GORM, so that a
// child mutation and the book touch share one clock reading.
type Book struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index:idx_books_user_deleted,priority:1"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null;default:''"`
	IsDeleted   bool       `gorm:"not null;default:false;index:idx_books_user_deleted,priority:2"`
	DeletedAt   *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null;index"`
}

func (Book) TableName() string {
	return "books"
}
