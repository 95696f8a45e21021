package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "tally/internal/domain/errors"
	"tally/internal/errors"
)

func recordError(t *testing.T, logBuf *bytes.Buffer, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(logBuf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw.HandleHTTPError(err, c)

	return rec
}

// Driver error text belongs in the logs, never in the response body.
func TestErrorMiddleware_DatabaseDetailsStayServerSide(t *testing.T) {
	cause := errors.New(`pq: insert or update on table "expenses" violates foreign key constraint "expenses_category_id_fkey"`)
	var logBuf bytes.Buffer

	rec := recordError(t, &logBuf, domainerrors.NewDatabaseExecuteError(cause, "failed to create expense"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATABASE_ERROR")
	assert.Contains(t, rec.Body.String(), "Database error occurred")
	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.NotContains(t, rec.Body.String(), "expenses_category_id_fkey")

	assert.Contains(t, logBuf.String(), "expenses_category_id_fkey")
}

func TestErrorMiddleware_ValidationDetailsReachClient(t *testing.T) {
	var logBuf bytes.Buffer

	rec := recordError(t, &logBuf, domainerrors.ErrValidationFailed.WithDetails("Email must be a valid email address"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "Email must be a valid email address")
	assert.Empty(t, logBuf.String())
}

func TestErrorMiddleware_UnhandledErrorIsGeneric(t *testing.T) {
	var logBuf bytes.Buffer

	rec := recordError(t, &logBuf, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "127.0.0.1")
	assert.Contains(t, logBuf.String(), "connection refused")
}
