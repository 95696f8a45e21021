package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tally/internal/domain/entity"
	"tally/internal/domain/repository"
	"tally/internal/errors"
)

// summaryRepository implements the domain's SummaryRepository interface with
// raw aggregate SQL. Parameters bind positionally; no user data is ever
// interpolated into the statements.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository is the constructor for summaryRepository.
func NewSummaryRepository(db *gorm.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

type monthlyRow struct {
	Month        string
	Year         int
	TotalAmount  decimal.Decimal
	ExpenseCount int64
}

// MonthlyTotals returns per-month totals for the user, most recent month
// first, at most limit rows.
func (repo *summaryRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MonthlySummary, error) {
	var rows []monthlyRow
	err := repo.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(expense_date, 'FMMonth') AS month,
			EXTRACT(YEAR FROM expense_date)::INTEGER AS year,
			SUM(amount) AS total_amount,
			COUNT(*)::BIGINT AS expense_count
		FROM expenses
		WHERE user_id = ?
		GROUP BY month, year
		ORDER BY year DESC, MIN(expense_date) DESC
		LIMIT ?`, userID, limit).
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to query monthly totals")
	}

	summaries := make([]*entity.MonthlySummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, &entity.MonthlySummary{
			Month:        rows[i].Month,
			Year:         rows[i].Year,
			TotalAmount:  rows[i].TotalAmount,
			ExpenseCount: rows[i].ExpenseCount,
		})
	}

	return summaries, nil
}

type categoryTotalRow struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryColor *string
	CategoryIcon  *string
	TotalAmount   decimal.Decimal
	ExpenseCount  int64
}

// CategoryTotals returns per-category totals for expenses dated on or after
// since. Categories without matching expenses appear with zero totals.
func (repo *summaryRepository) CategoryTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.CategorySummary, error) {
	var rows []categoryTotalRow
	err := repo.db.WithContext(ctx).Raw(`
		SELECT
			categories.id AS category_id,
			categories.name AS category_name,
			categories.color AS category_color,
			categories.icon AS category_icon,
			COALESCE(SUM(expenses.amount), 0) AS total_amount,
			COUNT(expenses.id)::BIGINT AS expense_count
		FROM categories
		LEFT JOIN expenses ON categories.id = expenses.category_id
			AND expenses.expense_date >= ?
		WHERE categories.user_id = ?
		GROUP BY categories.id, categories.name, categories.color, categories.icon
		ORDER BY total_amount DESC`, since, userID).
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to query category totals")
	}

	summaries := make([]*entity.CategorySummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, &entity.CategorySummary{
			CategoryID:    rows[i].CategoryID,
			CategoryName:  rows[i].CategoryName,
			CategoryColor: rows[i].CategoryColor,
			CategoryIcon:  rows[i].CategoryIcon,
			TotalAmount:   rows[i].TotalAmount,
			ExpenseCount:  rows[i].ExpenseCount,
		})
	}

	return summaries, nil
}
