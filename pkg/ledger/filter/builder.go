package filter

import (
	"time"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/repository/specification"

	"github.com/google/uuid"
)

// RecordQuery is the raw listing input as it arrives in the query string.
// Empty means "not supplied".
type RecordQuery struct {
	CategoryId string
	Type       string
	From       string
	To         string
	Remarks    string
}

// RecordFilter is the canonical predicate over one book's live records.
type RecordFilter struct {
	BookId     uuid.UUID
	CategoryId *uuid.UUID
	Type       *entity.RecordType
	From       *time.Time
	To         *time.Time
	Remarks    string
}

// Build validates q against bookId. A malformed category id or an unknown
// type is dropped from the filter; a malformed date is an InvalidArgument.
func Build(bookId uuid.UUID, q RecordQuery) (RecordFilter, error) {
	f := RecordFilter{BookId: bookId, Remarks: q.Remarks}

	if q.CategoryId != "" {
		if id, err := uuid.Parse(q.CategoryId); err == nil {
			f.CategoryId = &id
		}
	}

	if t, ok := entity.ParseRecordType(q.Type); ok {
		f.Type = &t
	}

	if q.From != "" {
		from, err := ParseDate(q.From)
		if err != nil {
			return RecordFilter{}, apperror.InvalidArgument("Invalid 'from' date")
		}
		f.From = &from
	}

	if q.To != "" {
		to, err := ParseDate(q.To)
		if err != nil {
			return RecordFilter{}, apperror.InvalidArgument("Invalid 'to' date")
		}
		f.To = &to
	}

	return f, nil
}

// Specifications renders the predicate. The book and soft-delete clauses are
// always first and always present.
func (f RecordFilter) Specifications() []specification.Specification {
	specs := []specification.Specification{
		specification.ByBookID{BookID: f.BookId},
		specification.NotDeleted{},
	}
	if f.CategoryId != nil {
		specs = append(specs, specification.ByCategoryID{CategoryID: *f.CategoryId})
	}
	if f.Type != nil {
		specs = append(specs, specification.ByRecordType{Type: string(*f.Type)})
	}
	if f.From != nil {
		specs = append(specs, specification.DateFrom{From: *f.From})
	}
	if f.To != nil {
		specs = append(specs, specification.DateTo{To: *f.To})
	}
	if f.Remarks != "" {
		specs = append(specs, specification.RemarksContain{Query: f.Remarks})
	}
	return specs
}
