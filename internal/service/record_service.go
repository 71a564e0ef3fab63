package service

import (
	"context"
	"errors"
	"time"

	"cashbook-be/internal/dto"
	"cashbook-be/internal/entity"
	"cashbook-be/internal/mapper"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/pkg/logger"
	"cashbook-be/internal/repository/contract"
	"cashbook-be/internal/repository/unitofwork"
	"cashbook-be/pkg/events"
	"cashbook-be/pkg/ledger/access"
	"cashbook-be/pkg/ledger/filter"
	"cashbook-be/pkg/ledger/pagination"
	"cashbook-be/pkg/ledger/totals"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type IRecordService interface {
	Add(ctx context.Context, userId, bookId uuid.UUID, req *dto.CreateRecordRequest) (*dto.RecordResponse, error)
	List(ctx context.Context, userId, bookId uuid.UUID, req *dto.ListRecordsRequest) (*dto.ListRecordsResponse, error)
	Update(ctx context.Context, userId, bookId uuid.UUID, req *dto.UpdateRecordRequest) (*dto.RecordResponse, error)
	Delete(ctx context.Context, userId, bookId, recordId uuid.UUID) error
}

type recordService struct {
	uowFactory       unitofwork.RepositoryFactory
	resolver         *access.Resolver
	aggregator       *totals.Aggregator
	paginator        *pagination.Paginator
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewRecordService(
	uowFactory unitofwork.RepositoryFactory,
	resolver *access.Resolver,
	aggregator *totals.Aggregator,
	paginator *pagination.Paginator,
	publisherService IPublisherService,
	logger logger.ILogger,
) IRecordService {
	return &recordService{
		uowFactory:       uowFactory,
		resolver:         resolver,
		aggregator:       aggregator,
		paginator:        paginator,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *recordService) Add(ctx context.Context, userId, bookId uuid.UUID, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, bookId)
	if err != nil {
		return nil, err
	}

	// 1. Validate fields
	categoryId, err := parseCategoryID(req.CategoryId)
	if err != nil {
		return nil, err
	}
	recordType, err := validateType(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Amount == nil {
		return nil, apperror.InvalidArgument("Amount is required")
	}
	amount, err := validateAmount(*req.Amount)
	if err != nil {
		return nil, err
	}

	now := laterOf(time.Now().UTC(), book.UpdatedAt)
	date := now
	if req.Date != nil && *req.Date != "" {
		if date, err = parseRecordDate(*req.Date); err != nil {
			return nil, err
		}
	}

	// 2. Category must live in the same book
	if categoryId != nil {
		if _, err := s.resolver.ResolveCategory(ctx, uow, book.Id, *categoryId); err != nil {
			return nil, err
		}
	}

	record := entity.Record{
		Id:         uuid.New(),
		BookId:     book.Id,
		CategoryId: categoryId,
		Type:       recordType,
		Amount:     amount,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Remarks != nil {
		record.Remarks = *req.Remarks
	}

	// 3. Persist, then propagate activity to the book
	if err := uow.RecordRepository().Create(ctx, &record); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := touchBook(ctx, uow, book.Id, now); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.logger, recordEvent(events.RecordCreated, userId, &record))

	return mapper.ToRecordResponse(&record), nil
}

// List runs totals and the page concurrently over one filter; they never see
// different predicates.
func (s *recordService) List(ctx context.Context, userId, bookId uuid.UUID, req *dto.ListRecordsRequest) (*dto.ListRecordsResponse, error) {
	f, err := filter.Build(bookId, filter.RecordQuery{
		CategoryId: req.CategoryId,
		Type:       req.Type,
		From:       req.From,
		To:         req.To,
		Remarks:    req.Remarks,
	})
	if err != nil {
		return nil, err
	}
	params := pagination.ParseParams(req.Page, req.Limit)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.resolver.ResolveBook(ctx, uow, userId, bookId); err != nil {
		return nil, err
	}

	var (
		sum  totals.Totals
		page *pagination.RecordPage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sum, err = s.aggregator.Aggregate(gctx, uow.RecordRepository(), f)
		return err
	})
	g.Go(func() error {
		var err error
		page, err = s.paginator.PageRecords(gctx, uow.RecordRepository(), f, params)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("RECORD", "Failed to list records", map[string]interface{}{
			"book_id": bookId.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return &dto.ListRecordsResponse{
		Records:    mapper.ToRecordResponses(page.Items),
		Totals:     sum,
		Pagination: page.Meta,
	}, nil
}

func (s *recordService) Update(ctx context.Context, userId, bookId uuid.UUID, req *dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, bookId)
	if err != nil {
		return nil, err
	}
	record, err := s.resolver.ResolveRecord(ctx, uow, book.Id, req.Id)
	if err != nil {
		return nil, err
	}

	// Validate every supplied field before touching the record
	categoryId, err := parseCategoryID(req.CategoryId)
	if err != nil {
		return nil, err
	}
	if categoryId != nil {
		if _, err := s.resolver.ResolveCategory(ctx, uow, book.Id, *categoryId); err != nil {
			return nil, err
		}
		record.CategoryId = categoryId
	}
	if req.Type != nil {
		if record.Type, err = validateType(*req.Type); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if record.Amount, err = validateAmount(*req.Amount); err != nil {
			return nil, err
		}
	}
	if req.Date != nil && *req.Date != "" {
		if record.Date, err = parseRecordDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Remarks != nil {
		record.Remarks = *req.Remarks
	}

	now := laterOf(time.Now().UTC(), book.UpdatedAt)
	record.UpdatedAt = now
	if err := uow.RecordRepository().Update(ctx, record); err != nil {
		return nil, recordWriteError(err)
	}
	if err := touchBook(ctx, uow, book.Id, now); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.logger, recordEvent(events.RecordUpdated, userId, record))

	return mapper.ToRecordResponse(record), nil
}

func (s *recordService) Delete(ctx context.Context, userId, bookId, recordId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.resolver.ResolveBook(ctx, uow, userId, bookId)
	if err != nil {
		return err
	}
	// An already deleted record is invisible here, so a second delete is NotFound
	record, err := s.resolver.ResolveRecord(ctx, uow, book.Id, recordId)
	if err != nil {
		return err
	}

	now := laterOf(time.Now().UTC(), book.UpdatedAt)
	record.IsDeleted = true
	record.DeletedAt = &now
	record.UpdatedAt = now
	if err := uow.RecordRepository().Update(ctx, record); err != nil {
		return recordWriteError(err)
	}
	if err := touchBook(ctx, uow, book.Id, now); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, s.logger, recordEvent(events.RecordDeleted, userId, record))

	return nil
}

// parseCategoryID treats nil and "" as not supplied.
func parseCategoryID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperror.InvalidArgument("Invalid category ID")
	}
	return &id, nil
}

func validateType(raw string) (entity.RecordType, error) {
	t, ok := entity.ParseRecordType(raw)
	if !ok {
		return "", apperror.InvalidArgument("Type must be 'in' or 'out'")
	}
	return t, nil
}

// Amounts are stored as numeric(20,4).
var maxAmount = decimal.New(1, 16)

func validateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperror.InvalidArgument("Amount must be greater than 0")
	}
	if !amount.Equal(amount.Truncate(4)) {
		return decimal.Zero, apperror.InvalidArgument("Amount must have at most 4 decimal places")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, apperror.InvalidArgument("Amount is too large")
	}
	return amount, nil
}

// recordWriteError maps a record that vanished between lookup and write to NotFound.
func recordWriteError(err error) error {
	if errors.Is(err, contract.ErrRecordDeleted) {
		return apperror.NotFound("Record not found")
	}
	return apperror.Internal(err)
}

func parseRecordDate(raw string) (time.Time, error) {
	date, err := filter.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperror.InvalidArgument("Invalid date")
	}
	return date, nil
}

func recordEvent(eventType string, userId uuid.UUID, record *entity.Record) events.LedgerEvent {
	return events.LedgerEvent{
		Type:       eventType,
		UserId:     userId,
		BookId:     &record.BookId,
		EntityType: events.EntityRecord,
		EntityId:   record.Id,
		Data: map[string]interface{}{
			"type":   string(record.Type),
			"amount": record.Amount.String(),
			"date":   record.Date.Format(time.RFC3339),
		},
		OccurredAt: time.Now().UTC(),
	}
}
