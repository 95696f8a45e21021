package usecase

import (
	"context"

	"github.com/google/uuid"

	"tally/internal/domain/entity"
)

// SummaryUsecase defines the interface for spending analytics. Both views are
// read-only aggregates over the calling user's expenses.
type SummaryUsecase interface {
	// Monthly returns per-month totals, most recent first, covering at most
	// the last twelve months that have expenses.
	Monthly(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlySummary, error)

	// ByCategory returns per-category totals for the current calendar month.
	ByCategory(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySummary, error)
}
