package access

import (
	"context"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/repository/specification"
	"cashbook-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Resolver is the ownership gate in front of every book-scoped operation.
type Resolver struct{}

// NewResolver creates a new ownership resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveBook returns the caller's live book. A book owned by someone else is
// reported exactly like a missing one.
func (r *Resolver) ResolveBook(ctx context.Context, uow unitofwork.UnitOfWork, userId, bookId uuid.UUID) (*entity.Book, error) {
	book, err := uow.BookRepository().FindOne(ctx,
		specification.ByID{ID: bookId},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if book == nil {
		return nil, apperror.NotFound("Book not found")
	}
	return book, nil
}

// ResolveCategory looks the category up inside bookId only, so an id that
// exists in another book is NotFound.
func (r *Resolver) ResolveCategory(ctx context.Context, uow unitofwork.UnitOfWork, bookId, categoryId uuid.UUID) (*entity.Category, error) {
	category, err := uow.CategoryRepository().FindOne(ctx,
		specification.ByID{ID: categoryId},
		specification.ByBookID{BookID: bookId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if category == nil {
		return nil, apperror.NotFound("Category not found")
	}
	return category, nil
}

func (r *Resolver) ResolveRecord(ctx context.Context, uow unitofwork.UnitOfWork, bookId, recordId uuid.UUID) (*entity.Record, error) {
	record, err := uow.RecordRepository().FindOne(ctx,
		specification.ByID{ID: recordId},
		specification.ByBookID{BookID: bookId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if record == nil {
		return nil, apperror.NotFound("Record not found")
	}
	return record, nil
}
