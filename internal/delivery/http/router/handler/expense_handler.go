package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"tally/internal/delivery/http/response"
	"tally/internal/usecase"
)

// ExpenseHandler holds dependencies for expense handlers.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the expense creation request.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	expense, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newExpenseResponse(expense), "Expense created successfully")
}

// List handles the expense listing request with optional date and category
// filters.
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.ListExpensesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense filter")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	expenses, err := h.uc.List(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExpenseListResponse(expenses), "")
}

// GetByID handles the single expense request.
func (h *ExpenseHandler) GetByID(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathID(c)
	if err != nil {
		return err
	}

	expense, err := h.uc.GetByID(c.Request().Context(), userID, expenseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExpenseResponse(expense), "")
}

// Update handles the expense update request.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	expense, err := h.uc.Update(c.Request().Context(), userID, expenseID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExpenseResponse(expense), "Expense updated successfully")
}

// Delete handles the expense deletion request.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, expenseID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
