package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByBookID scopes categories and records to their parent book.
type ByBookID struct {
	BookID uuid.UUID
}

func (s ByBookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("book_id = ?", s.BookID)
}
