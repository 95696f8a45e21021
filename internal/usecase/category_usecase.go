package usecase

import (
	"context"

	"github.com/google/uuid"

	"tally/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Color *string `json:"color" validate:"omitempty,max=7"`
	Icon  *string `json:"icon" validate:"omitempty,max=50"`
}

// UpdateCategoryInput carries the fields of a category update. Nil fields are
// left untouched.
type UpdateCategoryInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,max=7"`
	Icon  *string `json:"icon" validate:"omitempty,max=50"`
}

// CategoryUsecase defines the interface for category-related business
// operations. Every operation is scoped to the calling user.
type CategoryUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateCategoryInput) (*entity.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}
