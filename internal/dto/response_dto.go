package dto

import "cashbook-be/pkg/ledger/pagination"

// PaginatedResponse is the data block of every paginated listing.
type PaginatedResponse[T any] struct {
	Items      []T             `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}
