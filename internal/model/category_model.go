package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookId    uuid.UUID `gorm:"type:uuid;not null;index:idx_categories_book_deleted,priority:1"`
	Name      string    `gorm:"type:varchar(255);not null"`
	IsDeleted bool      `gorm:"not null;default:false;index:idx_categories_book_deleted,priority:2"`
	DeletedAt *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (Category) TableName() string {
	return "categories"
}
