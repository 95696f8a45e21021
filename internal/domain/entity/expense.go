package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single spending record. Amount is an exact decimal; Date is
// the day the money was spent, which may differ from CreatedAt.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseWithCategory joins an expense with its category's display fields so
// list and detail responses don't force clients into N+1 lookups.
type ExpenseWithCategory struct {
	Expense
	CategoryName  string
	CategoryColor *string
	CategoryIcon  *string
}

// ExpenseFilter narrows expense listings. Nil fields are ignored.
type ExpenseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}
