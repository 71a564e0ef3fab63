package implementation

import (
	"context"
	"errors"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/mapper"
	"cashbook-be/internal/model"
	"cashbook-be/internal/repository/contract"
	"cashbook-be/internal/repository/specification"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecordMapper
}

func NewRecordRepository(db *gorm.DB) contract.RecordRepository {
	return &RecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecordMapper(),
	}
}

func (r *RecordRepositoryImpl) Create(ctx context.Context, record *entity.Record) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecordRepositoryImpl) Update(ctx context.Context, record *entity.Record) error {
	m := r.mapper.ToModel(record)
	// A map keeps zero values such as cleared remarks or a nil category
	result := r.db.WithContext(ctx).
		Model(&model.Record{}).
		Where("id = ? AND is_deleted = ?", m.Id, false).
		Updates(map[string]interface{}{
			"category_id": m.CategoryId,
			"type":        m.Type,
			"amount":      m.Amount,
			"date":        m.Date,
			"remarks":     m.Remarks,
			"is_deleted":  m.IsDeleted,
			"deleted_at":  m.DeletedAt,
			"updated_at":  m.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return contract.ErrRecordDeleted
	}
	return nil
}

func (r *RecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Record, error) {
	var m model.Record
	query := specification.ApplyAll(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Record, error) {
	var models []*model.Record
	query := specification.ApplyAll(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.ApplyAll(r.db.WithContext(ctx).Model(&model.Record{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RecordRepositoryImpl) SumByType(ctx context.Context, specs ...specification.Specification) (*entity.RecordSums, error) {
	var row struct {
		CashIn  decimal.Decimal
		CashOut decimal.Decimal
	}

	query := specification.ApplyAll(r.db.WithContext(ctx).Model(&model.Record{}), specs...)
	err := query.
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS cash_in, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS cash_out",
			string(entity.RecordTypeIn), string(entity.RecordTypeOut),
		).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &entity.RecordSums{CashIn: row.CashIn, CashOut: row.CashOut}, nil
}
