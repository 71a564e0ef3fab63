package mapper

import (
	"cashbook-be/internal/dto"
	"cashbook-be/internal/entity"
)

func ToBookResponse(b *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		Id:          b.Id,
		UserId:      b.UserId,
		Title:       b.Title,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func ToCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:        c.Id,
		BookId:    c.BookId,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToRecordResponse(r *entity.Record) *dto.RecordResponse {
	return &dto.RecordResponse{
		Id:         r.Id,
		BookId:     r.BookId,
		CategoryId: r.CategoryId,
		Type:       string(r.Type),
		Amount:     r.Amount,
		Date:       r.Date,
		Remarks:    r.Remarks,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ToRecordResponses never returns nil so an empty page serializes as [].
func ToRecordResponses(records []*entity.Record) []*dto.RecordResponse {
	result := make([]*dto.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToRecordResponse(r))
	}
	return result
}
