package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/usecase"
)

// expenseDateLayout is the wire form of calendar days. Expenses carry a day,
// not an instant, so no timezone participates.
const expenseDateLayout = "2006-01-02"

// expenseService implements the ExpenseUsecase interface.
type expenseService struct {
	txManager    repository.TransactionManager
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ExpenseServiceParams holds dependencies for expenseService, injected by Fx.
type ExpenseServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ExpenseRepo  repository.ExpenseRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewExpenseService is the constructor for expenseService.
func NewExpenseService(params ExpenseServiceParams) usecase.ExpenseUsecase {
	return &expenseService{
		txManager:    params.TxManager,
		expenseRepo:  params.ExpenseRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

// Create records an expense against one of the user's categories. A category
// belonging to another user reports as not found, the same as a nonexistent
// one.
func (srv *expenseService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateExpenseInput) (*entity.ExpenseWithCategory, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
	}

	date, err := time.Parse(expenseDateLayout, input.Date)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid date format")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID, userID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	expense := &entity.Expense{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        date,
	}

	if err := srv.expenseRepo.Create(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to create expense")
	}

	srv.logger.Debug("Expense created", slog.Any("userID", userID), slog.Any("expenseID", expense.ID))

	return srv.loadExpense(ctx, expense.ID, userID)
}

// List returns the user's expenses joined with category display fields,
// newest first, narrowed by the optional date and category filters.
func (srv *expenseService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListExpensesInput) ([]*entity.ExpenseWithCategory, error) {
	filter, err := buildExpenseFilter(input)
	if err != nil {
		return nil, err
	}

	expenses, err := srv.expenseRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return expenses, nil
}

// GetByID returns one of the user's expenses with its category fields.
func (srv *expenseService) GetByID(ctx context.Context, userID, expenseID uuid.UUID) (*entity.ExpenseWithCategory, error) {
	return srv.loadExpense(ctx, expenseID, userID)
}

// Update applies the non-nil fields of input to the user's expense. A
// category move is checked for ownership first; the check and the update
// share one transaction.
func (srv *expenseService) Update(ctx context.Context, userID, expenseID uuid.UUID, input *usecase.UpdateExpenseInput) (*entity.ExpenseWithCategory, error) {
	fields := map[string]any{}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("amount must be positive")
		}
		fields["amount"] = *input.Amount
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Date != nil {
		date, err := time.Parse(expenseDateLayout, *input.Date)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid date format")
		}
		fields["expense_date"] = date
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		expenseRepo := repoFactory.ExpenseRepo()
		categoryRepo := repoFactory.CategoryRepo()

		if input.CategoryID != nil {
			if _, err := categoryRepo.FindByID(ctx, *input.CategoryID, userID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
				}

				return errors.Wrap(err, "failed to find category")
			}
			fields["category_id"] = *input.CategoryID
		}

		if len(fields) == 0 {
			// Nothing to change; still verify the expense exists.
			if _, err := expenseRepo.FindByID(ctx, expenseID, userID); err != nil {
				if errors.Is(err, repository.ErrExpenseNotFound) {
					return domainerrors.ErrExpenseNotFound.WrapMessage("expense not found")
				}

				return errors.Wrap(err, "failed to find expense")
			}

			return nil
		}

		if err := expenseRepo.UpdateFields(ctx, expenseID, userID, fields); err != nil {
			if errors.Is(err, repository.ErrExpenseNotFound) {
				return domainerrors.ErrExpenseNotFound.WrapMessage("expense not found")
			}
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
			}

			return errors.Wrap(err, "failed to update expense")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Expense updated", slog.Any("userID", userID), slog.Any("expenseID", expenseID))

	return srv.loadExpense(ctx, expenseID, userID)
}

// Delete removes the user's expense.
func (srv *expenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	if err := srv.expenseRepo.Delete(ctx, expenseID, userID); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return domainerrors.ErrExpenseNotFound.WrapMessage("expense not found")
		}

		return errors.Wrap(err, "failed to delete expense")
	}

	srv.logger.Debug("Expense deleted", slog.Any("userID", userID), slog.Any("expenseID", expenseID))

	return nil
}

func (srv *expenseService) loadExpense(ctx context.Context, expenseID, userID uuid.UUID) (*entity.ExpenseWithCategory, error) {
	expense, err := srv.expenseRepo.FindByID(ctx, expenseID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.ErrExpenseNotFound.WrapMessage("expense not found")
		}

		return nil, errors.Wrap(err, "failed to find expense")
	}

	return expense, nil
}

func buildExpenseFilter(input *usecase.ListExpensesInput) (entity.ExpenseFilter, error) {
	var filter entity.ExpenseFilter
	if input == nil {
		return filter, nil
	}

	if input.StartDate != "" {
		start, err := time.Parse(expenseDateLayout, input.StartDate)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WrapMessage("invalid start_date format")
		}
		filter.StartDate = &start
	}
	if input.EndDate != "" {
		end, err := time.Parse(expenseDateLayout, input.EndDate)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WrapMessage("invalid end_date format")
		}
		filter.EndDate = &end
	}
	filter.CategoryID = input.CategoryID

	return filter, nil
}
