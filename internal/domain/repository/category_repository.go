package repository

import (
	"context"

	"github.com/google/uuid"

	"tally/internal/domain/entity"
)

// CategoryRepository persists expense categories. Every operation is scoped
// by the owning user ID; rows belonging to other users behave as absent.
type CategoryRepository interface {
	// Create inserts a new category and fills in generated fields.
	Create(ctx context.Context, category *entity.Category) error

	// ListByUser returns all of a user's categories ordered by name.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByID returns the category owned by userID or ErrCategoryNotFound.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// NameExists reports whether userID already has a category called name.
	// excludeID, when non-nil, ignores that row (used by renames).
	NameExists(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// UpdateFields applies the given column values to the category owned by
	// userID. All values are passed as bound parameters.
	UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]any) error

	// Delete removes the category owned by userID; ErrCategoryNotFound when
	// no row matched.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// HasExpenses reports whether any expense still references the category.
	HasExpenses(ctx context.Context, id uuid.UUID) (bool, error)
}
