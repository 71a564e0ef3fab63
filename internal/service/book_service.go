package service

import (
	"context"
	"strings"
	"time"

	"cashbook-be/internal/dto"
	"cashbook-be/internal/entity"
	"cashbook-be/internal/mapper"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/pkg/logger"
	"cashbook-be/internal/repository/specification"
	"cashbook-be/internal/repository/unitofwork"
	"cashbook-be/pkg/events"
	"cashbook-be/pkg/ledger/access"
	"cashbook-be/pkg/ledger/pagination"

	"github.com/google/uuid"
)

type IBookService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookRequest) (*dto.BookResponse, error)
	List(ctx context.Context, userId uuid.UUID, params pagination.Params) (*dto.PaginatedResponse[*dto.BookResponse], error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookRequest) (*dto.BookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, bookId uuid.UUID) error
}

// bookOrder puts the most recently active book first.
var bookOrder = []specification.Specification{
	specification.OrderBy{Field: "updated_at", Desc: true},
	specification.OrderBy{Field: "created_at", Desc: true},
	specification.OrderBy{Field: "id"},
}

type bookService struct {
	uowFactory       unitofwork.RepositoryFactory
	resolver         *access.Resolver
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewBookService(
	uowFactory unitofwork.RepositoryFactory,
	resolver *access.Resolver,
	publisherService IPublisherService,
	logger logger.ILogger,
) IBookService {
	return &bookService{
		uowFactory:       uowFactory,
		resolver:         resolver,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *bookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.InvalidArgument("Title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now().UTC()
	book := entity.Book{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.BookRepository().Create(ctx, &book); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("BOOK", "Book created", map[string]interface{}{
		"book_id": book.Id.String(),
		"user_id": userId.String(),
	})
	publishActivity(ctx, s.publisherService, s.logger, bookEvent(events.BookCreated, &book, map[string]interface{}{
		"title": book.Title,
	}))

	return mapper.ToBookResponse(&book), nil
}

func (s *bookService) List(ctx context.Context, userId uuid.UUID, params pagination.Params) (*dto.PaginatedResponse[*dto.BookResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	predicate := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	}

	total, err := uow.BookRepository().Count(ctx, predicate...)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	items := make([]*dto.BookResponse, 0)
	if int64(params.Offset()) < total {
		specs := append(append(predicate, bookOrder...), params.Specification())
		books, err := uow.BookRepository().FindAll(ctx, specs...)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for _, book := range books {
			items = append(items, mapper.ToBookResponse(book))
		}
	}

	return &dto.PaginatedResponse[*dto.BookResponse]{
		Items:      items,
		Pagination: pagination.NewMeta(params, total),
	}, nil
}

func (s *bookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookRequest) (*dto.BookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperror.InvalidArgument("Title cannot be empty")
		}
		book.Title = title
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	book.UpdatedAt = laterOf(time.Now().UTC(), book.UpdatedAt)

	if err := uow.BookRepository().Update(ctx, book); err != nil {
		return nil, apperror.Internal(err)
	}

	publishActivity(ctx, s.publisherService, s.logger, bookEvent(events.BookUpdated, book, nil))

	return mapper.ToBookResponse(book), nil
}

func (s *bookService) Delete(ctx context.Context, userId uuid.UUID, bookId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, bookId)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	book.IsDeleted = true
	book.DeletedAt = &now
	book.UpdatedAt = laterOf(now, book.UpdatedAt)

	if err := uow.BookRepository().Update(ctx, book); err != nil {
		return apperror.Internal(err)
	}

	s.logger.Info("BOOK", "Book deleted", map[string]interface{}{
		"book_id": book.Id.String(),
		"user_id": userId.String(),
	})
	publishActivity(ctx, s.publisherService, s.logger, bookEvent(events.BookDeleted, book, nil))

	return nil
}

// touchBook is the secondary write after a category or record mutation. It is
// not transactional with the primary write.
func touchBook(ctx context.Context, uow unitofwork.UnitOfWork, bookId uuid.UUID, at time.Time) error {
	if err := uow.BookRepository().Touch(ctx, bookId, at); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// laterOf keeps timestamps monotonic when the wall clock steps backwards.
func laterOf(now, previous time.Time) time.Time {
	if previous.After(now) {
		return previous
	}
	return now
}

func bookEvent(eventType string, book *entity.Book, data map[string]interface{}) events.LedgerEvent {
	return events.LedgerEvent{
		Type:       eventType,
		UserId:     book.UserId,
		BookId:     &book.Id,
		EntityType: events.EntityBook,
		EntityId:   book.Id,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}
