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

	"github.com/google/uuid"
)

type ICategoryService interface {
	Create(ctx context.Context, userId, bookId uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context, userId, bookId uuid.UUID) ([]*dto.CategoryResponse, error)
	Update(ctx context.Context, userId, bookId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, userId, bookId, categoryId uuid.UUID) error
}

type categoryService struct {
	uowFactory       unitofwork.RepositoryFactory
	resolver         *access.Resolver
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCategoryService(
	uowFactory unitofwork.RepositoryFactory,
	resolver *access.Resolver,
	publisherService IPublisherService,
	logger logger.ILogger,
) ICategoryService {
	return &categoryService{
		uowFactory:       uowFactory,
		resolver:         resolver,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *categoryService) Create(ctx context.Context, userId, bookId uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, bookId)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.InvalidArgument("Name is required")
	}

	now := laterOf(time.Now().UTC(), book.UpdatedAt)
	category := entity.Category{
		Id:        uuid.New(),
		BookId:    book.Id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := touchBook(ctx, uow, book.Id, now); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.logger, categoryEvent(events.CategoryCreated, userId, &category))

	return mapper.ToCategoryResponse(&category), nil
}

func (s *categoryService) List(ctx context.Context, userId, bookId uuid.UUID) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.resolver.ResolveBook(ctx, uow, userId, bookId); err != nil {
		return nil, err
	}

	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.ByBookID{BookID: bookId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, mapper.ToCategoryResponse(category))
	}
	return result, nil
}

func (s *categoryService) Update(ctx context.Context, userId, bookId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, bookId)
	if err != nil {
		return nil, err
	}
	category, err := s.resolver.ResolveCategory(ctx, uow, book.Id, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.InvalidArgument("Name cannot be empty")
		}
		category.Name = name
	}

	now := laterOf(time.Now().UTC(), book.UpdatedAt)
	category.UpdatedAt = now
	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := touchBook(ctx, uow, book.Id, now); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.logger, categoryEvent(events.CategoryUpdated, userId, category))

	return mapper.ToCategoryResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, userId, bookId, categoryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, bookId)
	if err != nil {
		return err
	}
	category, err := s.resolver.ResolveCategory(ctx, uow, book.Id, categoryId)
	if err != nil {
		return err
	}

	now := laterOf(time.Now().UTC(), book.UpdatedAt)
	category.IsDeleted = true
	category.DeletedAt = &now
	category.UpdatedAt = now
	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return apperror.Internal(err)
	}
	if err := touchBook(ctx, uow, book.Id, now); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, s.logger, categoryEvent(events.CategoryDeleted, userId, category))

	return nil
}

func categoryEvent(eventType string, userId uuid.UUID, category *entity.Category) events.LedgerEvent {
	return events.LedgerEvent{
		Type:       eventType,
		UserId:     userId,
		BookId:     &category.BookId,
		EntityType: events.EntityCategory,
		EntityId:   category.Id,
		Data:       map[string]interface{}{"name": category.Name},
		OccurredAt: time.Now().UTC(),
	}
}
