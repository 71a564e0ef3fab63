package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
}

// UpdateBookRequest is partial: nil fields are left unchanged.
type UpdateBookRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitempty,max=255"`
	Description *string   `json:"description"`
}

type BookResponse struct {
	Id          uuid.UUID `json:"id"`
	UserId      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
