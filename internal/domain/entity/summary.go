package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary aggregates a user's spending for one calendar month.
type MonthlySummary struct {
	Month        string
	Year         int
	TotalAmount  decimal.Decimal
	ExpenseCount int64
}

// CategorySummary aggregates a user's spending per category over a window.
// Categories without expenses in the window appear with a zero total.
type CategorySummary struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryColor *string
	CategoryIcon  *string
	TotalAmount   decimal.Decimal
	ExpenseCount  int64
}
