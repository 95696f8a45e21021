package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
)

const dateLayout = "2006-01-02"

// userResponse is the public shape of an account. The password hash never
// leaves the persistence boundary.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	Icon      *string   `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

type expenseResponse struct {
	ID            uuid.UUID       `json:"id"`
	CategoryID    uuid.UUID       `json:"category_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	CategoryName  string          `json:"category_name"`
	CategoryColor *string         `json:"category_color"`
	CategoryIcon  *string         `json:"category_icon"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type monthlySummaryResponse struct {
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ExpenseCount int64           `json:"expense_count"`
}

type categorySummaryResponse struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Color        *string         `json:"color"`
	Icon         *string         `json:"icon"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ExpenseCount int64           `json:"expense_count"`
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}

func newCategoryResponse(category *entity.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		Icon:      category.Icon,
		CreatedAt: category.CreatedAt,
	}
}

func newCategoryListResponse(categories []*entity.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, newCategoryResponse(category))
	}

	return out
}

func newExpenseResponse(expense *entity.ExpenseWithCategory) expenseResponse {
	return expenseResponse{
		ID:            expense.ID,
		CategoryID:    expense.CategoryID,
		Amount:        expense.Amount,
		Description:   expense.Description,
		Date:          expense.Date.Format(dateLayout),
		CategoryName:  expense.CategoryName,
		CategoryColor: expense.CategoryColor,
		CategoryIcon:  expense.CategoryIcon,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}

func newExpenseListResponse(expenses []*entity.ExpenseWithCategory) []expenseResponse {
	out := make([]expenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		out = append(out, newExpenseResponse(expense))
	}

	return out
}

// currentUserID reads the authenticated account ID the auth middleware put
// on the context.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return userID, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid id format")
	}

	return id, nil
}
