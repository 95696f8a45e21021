package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"tally/internal/delivery/http/response"
	"tally/internal/usecase"
)

// SummaryHandler holds dependencies for the analytics handlers.
type SummaryHandler struct {
	uc     usecase.SummaryUsecase
	logger *slog.Logger
}

// NewSummaryHandler is the constructor for SummaryHandler, injected by Fx.
func NewSummaryHandler(uc usecase.SummaryUsecase, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Monthly handles the per-month totals request.
func (h *SummaryHandler) Monthly(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	summaries, err := h.uc.Monthly(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]monthlySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, monthlySummaryResponse{
			Month:        s.Month,
			Year:         s.Year,
			TotalAmount:  s.TotalAmount,
			ExpenseCount: s.ExpenseCount,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}

// ByCategory handles the per-category totals request for the current month.
func (h *SummaryHandler) ByCategory(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	summaries, err := h.uc.ByCategory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]categorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, categorySummaryResponse{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			Color:        s.CategoryColor,
			Icon:         s.CategoryIcon,
			TotalAmount:  s.TotalAmount,
			ExpenseCount: s.ExpenseCount,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}
