package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Record struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookId     uuid.UUID       `gorm:"type:uuid;not null;index:idx_records_book_deleted_date,priority:1"`
	CategoryId *uuid.UUID      `gorm:"type:uuid;index"`
	Type       string          `gorm:"type:varchar(3);not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Date       time.Time       `gorm:"not null;index:idx_records_book_deleted_date,priority:3"`
	Remarks    string          `gorm:"type:text;not null;default:''"`
	IsDeleted  bool            `gorm:"not null;default:false;index:idx_records_book_deleted_date,priority:2"`
	DeletedAt  *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (Record) TableName() string {
	return "records"
}
