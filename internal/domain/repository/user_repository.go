// Package repository defines the persistence interfaces the domain depends
// on, together with the sentinel errors implementations must return.
package repository

import (
	"context"

	"github.com/google/uuid"

	"tally/internal/domain/entity"
	"tally/internal/errors"
)

// Sentinel errors shared by repository implementations.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrExpenseNotFound  = errors.New("expense not found")
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns the user with the given ID or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail returns the user with the given email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// EmailExists reports whether any user is registered under email.
	EmailExists(ctx context.Context, email string) (bool, error)
}
