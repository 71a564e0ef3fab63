package pagination

import (
	"context"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/repository/contract"
	"cashbook-be/internal/repository/specification"
	"cashbook-be/pkg/ledger/filter"
)

// RecordOrder is most recent date first. Same-date records keep insertion
// order (created_at), and id settles exact ties so pages never overlap.
var RecordOrder = []specification.Specification{
	specification.OrderBy{Field: "date", Desc: true},
	specification.OrderBy{Field: "created_at"},
	specification.OrderBy{Field: "id"},
}

type RecordPage struct {
	Items []*entity.Record
	Meta  Meta
}

// Paginator windows a filtered record set and counts the whole of it.
type Paginator struct{}

// NewPaginator creates a new record paginator
func NewPaginator() *Paginator {
	return &Paginator{}
}

func (p *Paginator) PageRecords(ctx context.Context, repo contract.RecordRepository, f filter.RecordFilter, params Params) (*RecordPage, error) {
	predicate := f.Specifications()

	total, err := repo.Count(ctx, predicate...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	items := make([]*entity.Record, 0)
	if int64(params.Offset()) < total {
		specs := append(append(predicate, RecordOrder...), params.Specification())
		items, err = repo.FindAll(ctx, specs...)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	return &RecordPage{Items: items, Meta: NewMeta(params, total)}, nil
}
