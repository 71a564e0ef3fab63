package mapper

import (
	"encoding/json"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityLog) (*model.ActivityLog, error) {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return nil, err
	}
	return &model.ActivityLog{
		Id:         a.Id,
		EventType:  a.EventType,
		UserId:     a.UserId,
		BookId:     a.BookId,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Details:    datatypes.JSON(details),
		OccurredAt: a.OccurredAt,
	}, nil
}

func (m *ActivityMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}
	details := make(map[string]interface{})
	if len(a.Details) > 0 {
		// Rows written by this service always hold an object; anything else is left empty
		_ = json.Unmarshal(a.Details, &details)
	}
	return &entity.ActivityLog{
		Id:         a.Id,
		EventType:  a.EventType,
		UserId:     a.UserId,
		BookId:     a.BookId,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Details:    details,
		OccurredAt: a.OccurredAt,
	}
}
