package pagination

import (
	"math"
	"strconv"
	"strings"

	"cashbook-be/internal/repository/specification"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params is a normalized page request; Page and Limit are always >= 1.
type Params struct {
	Page  int
	Limit int
}

// ParseParams never fails: anything non-numeric or below 1 falls back to the default.
func ParseParams(page, limit string) Params {
	return NewParams(atoiOr(page, DefaultPage), atoiOr(limit, DefaultLimit))
}

func NewParams(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset is (page-1)*limit, saturating instead of overflowing for absurd pages.
func (p Params) Offset() int {
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

func (p Params) Specification() specification.Pagination {
	return specification.Pagination{Limit: p.Limit, Offset: p.Offset()}
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

// Meta is the pagination block returned next to a page of items.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewMeta(p Params, total int64) Meta {
	limit := int64(p.Limit)
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: int((total + limit - 1) / limit),
	}
}
