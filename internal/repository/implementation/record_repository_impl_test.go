package implementation

import (
	"context"
	"testing"
	"time"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/pkg/testdb"
	"cashbook-be/internal/repository/contract"
	"cashbook-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredRecord(t *testing.T, repo contract.RecordRepository) *entity.Record {
	t.Helper()
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	categoryId := uuid.New()
	record := &entity.Record{
		Id:         uuid.New(),
		BookId:     uuid.New(),
		CategoryId: &categoryId,
		Type:       entity.RecordTypeIn,
		Amount:     decimal.NewFromInt(20),
		Date:       now,
		Remarks:    "salary",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, repo.Create(context.Background(), record))
	return record
}

func TestRecordRepository_UpdateWritesZeroValues(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordRepository(testdb.New(t))
	record := newStoredRecord(t, repo)

	edit := *record
	edit.CategoryId = nil
	edit.Remarks = ""
	edit.Amount = decimal.RequireFromString("12.5")
	edit.UpdatedAt = record.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, &edit))

	stored, err := repo.FindOne(ctx, specification.ByID{ID: record.Id})
	require.NoError(t, err)
	assert.Nil(t, stored.CategoryId)
	assert.Equal(t, "", stored.Remarks)
	assert.True(t, decimal.RequireFromString("12.5").Equal(stored.Amount))
	assert.True(t, edit.UpdatedAt.Equal(stored.UpdatedAt))
}

func TestRecordRepository_UpdateDoesNotReviveDeleted(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordRepository(testdb.New(t))
	record := newStoredRecord(t, repo)

	// Both writers read the live record first
	stale := *record
	deleted := *record
	deletedAt := record.UpdatedAt.Add(time.Minute)
	deleted.IsDeleted = true
	deleted.DeletedAt = &deletedAt
	deleted.UpdatedAt = deletedAt
	require.NoError(t, repo.Update(ctx, &deleted))

	stale.Remarks = "edited"
	stale.UpdatedAt = deletedAt.Add(time.Minute)
	err := repo.Update(ctx, &stale)
	assert.ErrorIs(t, err, contract.ErrRecordDeleted)

	live, err := repo.FindOne(ctx, specification.ByID{ID: record.Id}, specification.NotDeleted{})
	require.NoError(t, err)
	assert.Nil(t, live)

	stored, err := repo.FindOne(ctx, specification.ByID{ID: record.Id})
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted)
	assert.Equal(t, "salary", stored.Remarks)
}
