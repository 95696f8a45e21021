package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tally/internal/domain/entity"
)

// CreateExpenseInput defines the data required to record an expense. Date is
// a calendar day in YYYY-MM-DD form.
type CreateExpenseInput struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
}

// UpdateExpenseInput carries the fields of an expense update. Nil fields are
// left untouched.
type UpdateExpenseInput struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CategoryID  *uuid.UUID       `json:"category_id"`
}

// ListExpensesInput narrows an expense listing. Dates are YYYY-MM-DD; empty
// fields are ignored.
type ListExpensesInput struct {
	StartDate  string     `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string     `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	CategoryID *uuid.UUID `query:"category_id"`
}

// ExpenseUsecase defines the interface for expense-related business
// operations. Every operation is scoped to the calling user; rows owned by
// someone else behave exactly like absent rows.
type ExpenseUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateExpenseInput) (*entity.ExpenseWithCategory, error)
	List(ctx context.Context, userID uuid.UUID, input *ListExpensesInput) ([]*entity.ExpenseWithCategory, error)
	GetByID(ctx context.Context, userID, expenseID uuid.UUID) (*entity.ExpenseWithCategory, error)
	Update(ctx context.Context, userID, expenseID uuid.UUID, input *UpdateExpenseInput) (*entity.ExpenseWithCategory, error)
	Delete(ctx context.Context, userID, expenseID uuid.UUID) error
}
