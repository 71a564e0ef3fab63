package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordType string

const (
	RecordTypeIn  RecordType = "in"
	RecordTypeOut RecordType = "out"
)

// ParseRecordType accepts exactly "in" or "out".
func ParseRecordType(s string) (RecordType, bool) {
	switch RecordType(s) {
	case RecordTypeIn:
		return RecordTypeIn, true
	case RecordTypeOut:
		return RecordTypeOut, true
	}
	return "", false
}

// Record is a single cash movement. Amount is always positive; Type carries the sign.
type Record struct {
	Id         uuid.UUID
	BookId     uuid.UUID
	CategoryId *uuid.UUID
	Type       RecordType
	Amount     decimal.Decimal
	Date       time.Time
	Remarks    string
	IsDeleted  bool
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RecordSums is the raw per-direction total of a record set.
type RecordSums struct {
	CashIn  decimal.Decimal
	CashOut decimal.Decimal
}
