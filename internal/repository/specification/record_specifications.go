package specification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

type ByRecordType struct {
	Type string
}

func (s ByRecordType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// DateFrom is inclusive.
type DateFrom struct {
	From time.Time
}

func (s DateFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", s.From.UTC())
}

// DateTo is inclusive.
type DateTo struct {
	To time.Time
}

func (s DateTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date <= ?", s.To.UTC())
}

// RemarksContain is a case-insensitive substring match. Both sides go through
// the database's LOWER so they fold the same way. LIKE wildcards in the query
// are matched literally.
type RemarksContain struct {
	Query string
}

func (s RemarksContain) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(s.Query) + "%"
	return db.Where("LOWER(remarks) LIKE LOWER(?) ESCAPE '\\'", pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
