package service

import (
	"context"
	"testing"
	"time"

	"cashbook-be/internal/dto"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/pkg/events"
	"cashbook-be/pkg/ledger/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordIds(records []*dto.RecordResponse) []uuid.UUID {
	result := make([]uuid.UUID, len(records))
	for i, r := range records {
		result[i] = r.Id
	}
	return result
}

func TestRecordService_ListExampleBook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userId := uuid.New()
	book := env.createBook(t, userId, "Example")

	env.addRecord(t, userId, book.Id, "in", "100", "2024-01-05")
	jan10 := env.addRecord(t, userId, book.Id, "out", "40", "2024-01-10")
	jan15 := env.addRecord(t, userId, book.Id, "in", "10", "2024-01-15")

	t.Run("first page", func(t *testing.T) {
		res, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{Page: "1", Limit: "2"})
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{jan15.Id, jan10.Id}, recordIds(res.Records))
		assertDecimal(t, "110", res.Totals.CashIn)
		assertDecimal(t, "40", res.Totals.CashOut)
		assertDecimal(t, "70", res.Totals.NetAmount)
		assert.Equal(t, pagination.Meta{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, res.Pagination)
	})

	t.Run("type out", func(t *testing.T) {
		res, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{Type: "out"})
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{jan10.Id}, recordIds(res.Records))
		assertDecimal(t, "0", res.Totals.CashIn)
		assertDecimal(t, "40", res.Totals.CashOut)
		assertDecimal(t, "-40", res.Totals.NetAmount)
		assert.Equal(t, pagination.Meta{Page: 1, Limit: 10, Total: 1, TotalPages: 1}, res.Pagination)
	})

	t.Run("lenient filters are ignored", func(t *testing.T) {
		res, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{Type: "bogus", CategoryId: "nope", Page: "x", Limit: "-1"})
		require.NoError(t, err)
		assert.Len(t, res.Records, 3)
		assert.Equal(t, 1, res.Pagination.Page)
		assert.Equal(t, 10, res.Pagination.Limit)
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		_, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{From: "last week"})
		assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
	})

	t.Run("other user", func(t *testing.T) {
		_, err := env.records.List(ctx, uuid.New(), book.Id, &dto.ListRecordsRequest{})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestRecordService_ListEmptyBook(t *testing.T) {
	env := newTestEnv(t)
	userId := uuid.New()
	book := env.createBook(t, userId, "Empty")

	res, err := env.records.List(context.Background(), userId, book.Id, &dto.ListRecordsRequest{})
	require.NoError(t, err)

	assert.NotNil(t, res.Records)
	assert.Empty(t, res.Records)
	assert.True(t, res.Totals.CashIn.IsZero())
	assert.True(t, res.Totals.CashOut.IsZero())
	assert.True(t, res.Totals.NetAmount.IsZero())
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, res.Pagination)
}

func TestRecordService_AddValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userId := uuid.New()
	book := env.createBook(t, userId, "Validation")
	otherBook := env.createBook(t, userId, "Other")
	foreignCategory := env.createCategory(t, userId, otherBook.Id, "Elsewhere")

	tests := []struct {
		name string
		req  *dto.CreateRecordRequest
		kind apperror.Kind
	}{
		{name: "bad type", req: recordRequest("sideways", "10", ""), kind: apperror.KindInvalidArgument},
		{name: "missing type", req: recordRequest("", "10", ""), kind: apperror.KindInvalidArgument},
		{name: "zero amount", req: recordRequest("in", "0", ""), kind: apperror.KindInvalidArgument},
		{name: "negative amount", req: recordRequest("out", "-5", ""), kind: apperror.KindInvalidArgument},
		{name: "missing amount", req: recordRequest("in", "", ""), kind: apperror.KindInvalidArgument},
		{name: "amount below storage precision", req: recordRequest("in", "0.00001", ""), kind: apperror.KindInvalidArgument},
		{name: "amount too large", req: recordRequest("in", "10000000000000000", ""), kind: apperror.KindInvalidArgument},
		{name: "bad date", req: recordRequest("in", "10", "31/01/2024"), kind: apperror.KindInvalidArgument},
		{
			name: "malformed category",
			req: func() *dto.CreateRecordRequest {
				r := recordRequest("in", "10", "")
				r.CategoryId = strPtr("12345")
				return r
			}(),
			kind: apperror.KindInvalidArgument,
		},
		{
			name: "unknown category",
			req: func() *dto.CreateRecordRequest {
				r := recordRequest("in", "10", "")
				r.CategoryId = strPtr(uuid.NewString())
				return r
			}(),
			kind: apperror.KindNotFound,
		},
		{
			name: "category from another book",
			req: func() *dto.CreateRecordRequest {
				r := recordRequest("in", "10", "")
				r.CategoryId = strPtr(foreignCategory.Id.String())
				return r
			}(),
			kind: apperror.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.records.Add(ctx, userId, book.Id, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}

	// Nothing above may have written a row
	res, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Records)

	t.Run("book of another user", func(t *testing.T) {
		_, err := env.records.Add(ctx, uuid.New(), book.Id, recordRequest("in", "10", ""))
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.Equal(t, "Book not found", err.Error())
	})
}

func TestRecordService_AddDefaults(t *testing.T) {
	env := newTestEnv(t)
	userId := uuid.New()
	book := env.createBook(t, userId, "Defaults")
	category := env.createCategory(t, userId, book.Id, "Food")

	before := time.Now().UTC().Add(-time.Second)
	req := recordRequest("out", "12.50", "")
	req.CategoryId = strPtr(category.Id.String())

	record, err := env.records.Add(context.Background(), userId, book.Id, req)
	require.NoError(t, err)

	assert.Equal(t, "out", record.Type)
	assertDecimal(t, "12.5", record.Amount)
	assert.Equal(t, "", record.Remarks)
	require.NotNil(t, record.CategoryId)
	assert.Equal(t, category.Id, *record.CategoryId)
	assert.True(t, record.Date.After(before))
	assert.Equal(t, time.UTC, record.Date.Location())
}

func TestRecordService_AddAmountLimits(t *testing.T) {
	env := newTestEnv(t)
	userId := uuid.New()
	book := env.createBook(t, userId, "Limits")

	smallest := env.addRecord(t, userId, book.Id, "in", "0.0001", "2024-01-01")
	largest := env.addRecord(t, userId, book.Id, "in", "9999999999999999.9999", "2024-01-02")
	trailing := env.addRecord(t, userId, book.Id, "in", "1.50000", "2024-01-03")

	assertDecimal(t, "0.0001", smallest.Amount)
	assertDecimal(t, "9999999999999999.9999", largest.Amount)
	assertDecimal(t, "1.5", trailing.Amount)
}

func TestRecordService_AddTouchesBook(t *testing.T) {
	env := newTestEnv(t)
	userId := uuid.New()
	book := env.createBook(t, userId, "Touch")

	record := env.addRecord(t, userId, book.Id, "in", "5", "2020-01-01")

	updatedAt := env.bookUpdatedAt(t, userId, book.Id)
	assert.False(t, updatedAt.Before(record.UpdatedAt))
	assert.False(t, updatedAt.Before(book.UpdatedAt))
	assert.Equal(t, []string{events.BookCreated, events.RecordCreated}, env.publisher.types())
}

func TestRecordService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userId := uuid.New()
	book := env.createBook(t, userId, "Update")

	req := recordRequest("in", "20", "2024-01-05")
	req.Remarks = strPtr("salary")
	created, err := env.records.Add(ctx, userId, book.Id, req)
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		amount := decimal.NewFromInt(25)
		updated, err := env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{Id: created.Id, Amount: &amount})
		require.NoError(t, err)

		assertDecimal(t, "25", updated.Amount)
		assert.Equal(t, "in", updated.Type)
		assert.Equal(t, "salary", updated.Remarks)
		assert.True(t, created.Date.Equal(updated.Date))
	})

	t.Run("empty remarks clears them", func(t *testing.T) {
		updated, err := env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{Id: created.Id, Remarks: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Remarks)
	})

	t.Run("invalid type rejects the whole update", func(t *testing.T) {
		amount := decimal.NewFromInt(99)
		_, err := env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{
			Id:     created.Id,
			Type:   strPtr("both"),
			Amount: &amount,
		})
		assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))

		res, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{})
		require.NoError(t, err)
		require.Len(t, res.Records, 1)
		assertDecimal(t, "25", res.Records[0].Amount)
	})

	t.Run("amount outside storage range", func(t *testing.T) {
		for _, raw := range []string{"0.00001", "25.12345", "10000000000000000"} {
			amount := decimal.RequireFromString(raw)
			_, err := env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{Id: created.Id, Amount: &amount})
			assert.True(t, apperror.Is(err, apperror.KindInvalidArgument), raw)
		}

		res, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{})
		require.NoError(t, err)
		assertDecimal(t, "25", res.Records[0].Amount)
	})

	t.Run("empty date keeps the stored date", func(t *testing.T) {
		updated, err := env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{Id: created.Id, Date: strPtr("")})
		require.NoError(t, err)
		assert.True(t, created.Date.Equal(updated.Date))
	})

	t.Run("non positive amount", func(t *testing.T) {
		amount := decimal.Zero
		_, err := env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{Id: created.Id, Amount: &amount})
		assert.True(t, apperror.Is(err, apperror.KindInvalidArgument))
	})

	t.Run("move to a category of the same book", func(t *testing.T) {
		category := env.createCategory(t, userId, book.Id, "Income")
		updated, err := env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{
			Id:         created.Id,
			CategoryId: strPtr(category.Id.String()),
			Type:       strPtr("out"),
			Date:       strPtr("2024-02-01"),
		})
		require.NoError(t, err)
		assert.Equal(t, category.Id, *updated.CategoryId)
		assert.Equal(t, "out", updated.Type)
		assert.True(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Equal(updated.Date))

		updatedAt := env.bookUpdatedAt(t, userId, book.Id)
		assert.False(t, updatedAt.Before(updated.UpdatedAt))
	})

	t.Run("record from another book", func(t *testing.T) {
		other := env.createBook(t, userId, "Other")
		_, err := env.records.Update(ctx, userId, other.Id, &dto.UpdateRecordRequest{Id: created.Id, Remarks: strPtr("x")})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.Equal(t, "Record not found", err.Error())
	})
}

func TestRecordService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userId := uuid.New()
	book := env.createBook(t, userId, "Delete")
	sibling := env.createBook(t, userId, "Sibling")

	keep := env.addRecord(t, userId, book.Id, "in", "100", "2024-01-05")
	drop := env.addRecord(t, userId, book.Id, "out", "40", "2024-01-10")
	env.addRecord(t, userId, sibling.Id, "out", "7", "2024-01-10")

	require.NoError(t, env.records.Delete(ctx, userId, book.Id, drop.Id))

	res, err := env.records.List(ctx, userId, book.Id, &dto.ListRecordsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{keep.Id}, recordIds(res.Records))
	assertDecimal(t, "0", res.Totals.CashOut)
	assertDecimal(t, "100", res.Totals.NetAmount)

	siblingRes, err := env.records.List(ctx, userId, sibling.Id, &dto.ListRecordsRequest{})
	require.NoError(t, err)
	assert.Len(t, siblingRes.Records, 1)

	// The book itself stays visible
	env.bookUpdatedAt(t, userId, book.Id)

	err = env.records.Delete(ctx, userId, book.Id, drop.Id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = env.records.Update(ctx, userId, book.Id, &dto.UpdateRecordRequest{Id: drop.Id, Remarks: strPtr("ghost")})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
