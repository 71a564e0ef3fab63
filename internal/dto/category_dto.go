package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Id   uuid.UUID `json:"-"`
	Name *string   `json:"name" validate:"omitempty,max=255"`
}

type CategoryResponse struct {
	Id        uuid.UUID `json:"id"`
	BookId    uuid.UUID `json:"book_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
