package dto

import (
	"time"

	"cashbook-be/pkg/ledger/pagination"
	"cashbook-be/pkg/ledger/totals"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest mirrors the JSON body. Pointer fields are optional;
// Amount is a pointer so a missing amount is told apart from zero.
type CreateRecordRequest struct {
	CategoryId *string          `json:"category_id"`
	Type       string           `json:"type"`
	Amount     *decimal.Decimal `json:"amount"`
	Date       *string          `json:"date"`
	Remarks    *string          `json:"remarks"`
}

// UpdateRecordRequest is partial. Remarks set to "" clears the remarks.
type UpdateRecordRequest struct {
	Id         uuid.UUID        `json:"-"`
	CategoryId *string          `json:"category_id"`
	Type       *string          `json:"type"`
	Amount     *decimal.Decimal `json:"amount"`
	Date       *string          `json:"date"`
	Remarks    *string          `json:"remarks"`
}

// ListRecordsRequest carries the raw query string values.
type ListRecordsRequest struct {
	Page       string `query:"page"`
	Limit      string `query:"limit"`
	CategoryId string `query:"category_id"`
	Type       string `query:"type"`
	From       string `query:"from"`
	To         string `query:"to"`
	Remarks    string `query:"remarks"`
}

type RecordResponse struct {
	Id         uuid.UUID       `json:"id"`
	BookId     uuid.UUID       `json:"book_id"`
	CategoryId *uuid.UUID      `json:"category_id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Remarks    string          `json:"remarks"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type ListRecordsResponse struct {
	Records    []*RecordResponse `json:"records"`
	Totals     totals.Totals     `json:"totals"`
	Pagination pagination.Meta   `json:"pagination"`
}
