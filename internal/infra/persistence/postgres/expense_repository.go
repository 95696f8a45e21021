package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/errors"
	"tally/internal/infra/persistence/model"
)

// expenseRepository implements the domain's ExpenseRepository interface using
// GORM. Reads join the owning category so responses carry its display fields
// without a second round trip.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

// expenseRow is the scan target for the expense+category join.
type expenseRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	Description   string
	ExpenseDate   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CategoryName  string
	CategoryColor *string
	CategoryIcon  *string
}

const expenseJoinSelect = `expenses.id, expenses.user_id, expenses.category_id,
	expenses.amount, expenses.description, expenses.expense_date,
	expenses.created_at, expenses.updated_at,
	categories.name AS category_name,
	categories.color AS category_color,
	categories.icon AS category_icon`

// Create persists a new expense and fills in generated fields.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt
	expense.UpdatedAt = expenseM.UpdatedAt

	return nil
}

// ListByUser returns the user's expenses joined with category display fields,
// newest first, narrowed by the filter. Filter values bind as parameters.
func (repo *expenseRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter entity.ExpenseFilter) ([]*entity.ExpenseWithCategory, error) {
	query := repo.db.WithContext(ctx).
		Table("expenses").
		Select(expenseJoinSelect).
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("expenses.expense_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("expenses.expense_date <= ?", *filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where("expenses.category_id = ?", *filter.CategoryID)
	}

	var rows []expenseRow
	err := query.
		Order("expenses.expense_date DESC, expenses.created_at DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	expenses := make([]*entity.ExpenseWithCategory, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, toExpenseWithCategory(&rows[i]))
	}

	return expenses, nil
}

// FindByID returns the expense owned by userID joined with its category, or
// ErrExpenseNotFound.
func (repo *expenseRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.ExpenseWithCategory, error) {
	var rows []expenseRow
	err := repo.db.WithContext(ctx).
		Table("expenses").
		Select(expenseJoinSelect).
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.id = ? AND expenses.user_id = ?", id, userID).
		Limit(1).
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find expense")
	}
	if len(rows) == 0 {
		return nil, repository.ErrExpenseNotFound
	}

	return toExpenseWithCategory(&rows[0]), nil
}

// UpdateFields applies the given column values to the expense owned by
// userID. Values travel as bound parameters only; GORM maintains updated_at.
func (repo *expenseRepository) UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update expense")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// Delete removes the expense owned by userID.
func (repo *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expense")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

func toExpenseWithCategory(r *expenseRow) *entity.ExpenseWithCategory {
	return &entity.ExpenseWithCategory{
		Expense: entity.Expense{
			ID:          r.ID,
			UserID:      r.UserID,
			CategoryID:  r.CategoryID,
			Amount:      r.Amount,
			Description: r.Description,
			Date:        r.ExpenseDate,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		},
		CategoryName:  r.CategoryName,
		CategoryColor: r.CategoryColor,
		CategoryIcon:  r.CategoryIcon,
	}
}

func fromExpenseDomain(e *entity.Expense) *model.ExpenseModel {
	return &model.ExpenseModel{
		ID:          e.ID,
		UserID:      e.UserID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: e.Date,
	}
}
