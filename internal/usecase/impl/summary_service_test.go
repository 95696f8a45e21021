package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain/entity"
	mockRepo "tally/internal/mocks/repository"
)

func TestSummaryService_Monthly_CapsAtTwelve(t *testing.T) {
	summaryRepo := mockRepo.NewMockSummaryRepository(t)
	service := NewSummaryService(SummaryServiceParams{SummaryRepo: summaryRepo})

	ctx := context.Background()
	userID := uuid.New()
	summaries := []*entity.MonthlySummary{
		{Month: "August", Year: 2026, TotalAmount: decimal.NewFromInt(120), ExpenseCount: 4},
		{Month: "July", Year: 2026, TotalAmount: decimal.NewFromInt(80), ExpenseCount: 2},
	}

	summaryRepo.On("MonthlyTotals", ctx, userID, 12).Return(summaries, nil)

	got, err := service.Monthly(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestSummaryService_ByCategory_CurrentMonthWindow(t *testing.T) {
	summaryRepo := mockRepo.NewMockSummaryRepository(t)
	service := NewSummaryService(SummaryServiceParams{SummaryRepo: summaryRepo}).(*summaryService)
	service.now = func() time.Time {
		return time.Date(2026, time.August, 25, 15, 30, 0, 0, time.UTC)
	}

	ctx := context.Background()
	userID := uuid.New()
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	summaries := []*entity.CategorySummary{
		{CategoryID: uuid.New(), CategoryName: "Groceries", TotalAmount: decimal.NewFromInt(60), ExpenseCount: 3},
		{CategoryID: uuid.New(), CategoryName: "Transport", TotalAmount: decimal.Zero, ExpenseCount: 0},
	}

	summaryRepo.On("CategoryTotals", ctx, userID, monthStart).Return(summaries, nil)

	got, err := service.ByCategory(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}
