package contract

import (
	"context"
	"errors"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/repository/specification"
)

// ErrRecordDeleted is returned by Update when the record was soft deleted
// after it was read.
var ErrRecordDeleted = errors.New("record is deleted")

type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	// Update writes the mutable columns of a live record. It never revives a
	// deleted one.
	Update(ctx context.Context, record *entity.Record) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Record, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Record, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SumByType totals in and out amounts over the rows matched by specs.
	// An empty match yields zero sums, never an error.
	SumByType(ctx context.Context, specs ...specification.Specification) (*entity.RecordSums, error)
}
