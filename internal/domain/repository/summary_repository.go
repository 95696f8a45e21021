package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tally/internal/domain/entity"
)

// SummaryRepository runs the aggregate queries behind the analytics
// endpoints. Read-only.
type SummaryRepository interface {
	// MonthlyTotals returns per-month totals for the user, most recent month
	// first, at most limit rows.
	MonthlyTotals(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MonthlySummary, error)

	// CategoryTotals returns per-category totals for expenses dated on or
	// after since. Categories without matching expenses appear with zero
	// totals.
	CategoryTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.CategorySummary, error)
}
