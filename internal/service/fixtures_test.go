package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"cashbook-be/internal/dto"
	"cashbook-be/internal/pkg/logger"
	"cashbook-be/internal/pkg/testdb"
	"cashbook-be/internal/repository/memory"
	"cashbook-be/internal/repository/unitofwork"
	"cashbook-be/pkg/events"
	"cashbook-be/pkg/ledger/access"
	"cashbook-be/pkg/ledger/pagination"
	"cashbook-be/pkg/ledger/totals"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.LedgerEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event events.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]string, len(p.events))
	for i, e := range p.events {
		result[i] = e.Type
	}
	return result
}

type testEnv struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *recordingPublisher
	auth       IAuthService
	books      IBookService
	categories ICategoryService
	records    IRecordService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uowFactory := unitofwork.NewRepositoryFactory(testdb.New(t))
	publisher := &recordingPublisher{}
	log := logger.NewNopLogger()
	resolver := access.NewResolver()

	return &testEnv{
		uowFactory: uowFactory,
		publisher:  publisher,
		auth:       NewAuthService(uowFactory, memory.NewTokenDenylist(), "test-secret", time.Hour, log),
		books:      NewBookService(uowFactory, resolver, publisher, log),
		categories: NewCategoryService(uowFactory, resolver, publisher, log),
		records:    NewRecordService(uowFactory, resolver, totals.NewAggregator(), pagination.NewPaginator(), publisher, log),
	}
}

func (e *testEnv) createBook(t *testing.T, userId uuid.UUID, title string) *dto.BookResponse {
	t.Helper()
	book, err := e.books.Create(context.Background(), userId, &dto.CreateBookRequest{Title: title})
	require.NoError(t, err)
	return book
}

func (e *testEnv) createCategory(t *testing.T, userId, bookId uuid.UUID, name string) *dto.CategoryResponse {
	t.Helper()
	category, err := e.categories.Create(context.Background(), userId, bookId, &dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return category
}

func (e *testEnv) addRecord(t *testing.T, userId, bookId uuid.UUID, kind, amount, date string) *dto.RecordResponse {
	t.Helper()
	record, err := e.records.Add(context.Background(), userId, bookId, recordRequest(kind, amount, date))
	require.NoError(t, err)
	return record
}

// bookUpdatedAt reads the stored value, bypassing ownership checks.
func (e *testEnv) bookUpdatedAt(t *testing.T, userId, bookId uuid.UUID) time.Time {
	t.Helper()
	book, err := access.NewResolver().ResolveBook(context.Background(), e.uowFactory.NewUnitOfWork(context.Background()), userId, bookId)
	require.NoError(t, err)
	return book.UpdatedAt
}

func recordRequest(kind, amount, date string) *dto.CreateRecordRequest {
	req := &dto.CreateRecordRequest{Type: kind}
	if amount != "" {
		a := decimal.RequireFromString(amount)
		req.Amount = &a
	}
	if date != "" {
		req.Date = &date
	}
	return req
}

func strPtr(s string) *string {
	return &s
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s got %s", want, got)
}
