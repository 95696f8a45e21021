package repository

import (
	"context"

	"github.com/google/uuid"

	"tally/internal/domain/entity"
)

// ExpenseRepository persists expenses. As with categories, every operation is
// scoped by the owning user ID.
type ExpenseRepository interface {
	// Create inserts a new expense and fills in generated fields.
	Create(ctx context.Context, expense *entity.Expense) error

	// ListByUser returns the user's expenses joined with category display
	// fields, newest first, narrowed by the filter.
	ListByUser(ctx context.Context, userID uuid.UUID, filter entity.ExpenseFilter) ([]*entity.ExpenseWithCategory, error)

	// FindByID returns the expense owned by userID joined with its category,
	// or ErrExpenseNotFound.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.ExpenseWithCategory, error)

	// UpdateFields applies the given column values to the expense owned by
	// userID. All values are passed as bound parameters.
	UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]any) error

	// Delete removes the expense owned by userID; ErrExpenseNotFound when no
	// row matched.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
