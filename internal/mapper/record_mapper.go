package mapper

import (
	"cashbook-be/internal/entity"
	"cashbook-be/internal/model"
)

type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

func (m *RecordMapper) ToEntity(r *model.Record) *entity.Record {
	if r == nil {
		return nil
	}
	return &entity.Record{
		Id:         r.Id,
		BookId:     r.BookId,
		CategoryId: r.CategoryId,
		Type:       entity.RecordType(r.Type),
		Amount:     r.Amount,
		Date:       r.Date.UTC(),
		Remarks:    r.Remarks,
		IsDeleted:  r.IsDeleted,
		DeletedAt:  r.DeletedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *RecordMapper) ToModel(r *entity.Record) *model.Record {
	if r == nil {
		return nil
	}
	return &model.Record{
		Id:         r.Id,
		BookId:     r.BookId,
		CategoryId: r.CategoryId,
		Type:       string(r.Type),
		Amount:     r.Amount,
		Date:       r.Date.UTC(),
		Remarks:    r.Remarks,
		IsDeleted:  r.IsDeleted,
		DeletedAt:  r.DeletedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (m *RecordMapper) ToEntities(records []*model.Record) []*entity.Record {
	entities := make([]*entity.Record, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
