package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tally/internal/domain/entity"
	"tally/internal/domain/repository"
	"tally/internal/usecase"
)

// monthlySummaryLimit caps the monthly view to the most recent year of
// activity.
const monthlySummaryLimit = 12

// summaryService implements the SummaryUsecase interface.
type summaryService struct {
	summaryRepo repository.SummaryRepository
	now         func() time.Time
}

// SummaryServiceParams holds dependencies for summaryService, injected by Fx.
type SummaryServiceParams struct {
	fx.In

	SummaryRepo repository.SummaryRepository
}

// NewSummaryService is the constructor for summaryService.
func NewSummaryService(params SummaryServiceParams) usecase.SummaryUsecase {
	return &summaryService{
		summaryRepo: params.SummaryRepo,
		now:         time.Now,
	}
}

// Monthly returns per-month totals, most recent first, for at most the last
// twelve months that have expenses.
func (srv *summaryService) Monthly(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlySummary, error) {
	summaries, err := srv.summaryRepo.MonthlyTotals(ctx, userID, monthlySummaryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load monthly totals")
	}

	return summaries, nil
}

// ByCategory returns per-category totals for the current calendar month,
// counting expenses dated on or after the first of the month.
func (srv *summaryService) ByCategory(ctx context.Context, userID uuid.UUID) ([]*entity.CategorySummary, error) {
	now := srv.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	summaries, err := srv.summaryRepo.CategoryTotals(ctx, userID, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category totals")
	}

	return summaries, nil
}
