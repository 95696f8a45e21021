package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/delivery/http/response"
	"tally/internal/domain/service"
	mockSvc "tally/internal/mocks/service"
)

func newAuthTestServer(t *testing.T, tokenSvc service.TokenService) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	authMw := NewAuthMiddleware(tokenSvc)
	e.GET("/protected", func(c echo.Context) error {
		userID := c.Get("userID").(uuid.UUID)

		return c.String(http.StatusOK, userID.String())
	}, authMw.Authenticate)

	return e
}

func doProtectedRequest(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)

	return resp
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.On("Validate", "good.token").Return(&service.Claims{UserID: userID}, nil)

	e := newAuthTestServer(t, tokenSvc)
	rec := doProtectedRequest(e, "Bearer good.token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

// An absent header is the one failure reported distinctly; anything carrying
// a credential still collapses into the generic token error.
func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := newAuthTestServer(t, mockSvc.NewMockTokenService(t))
	rec := doProtectedRequest(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "AUTH_HEADER_MISSING", resp.Error.Code)
	assert.Contains(t, resp.Message, "Missing authorization header")
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	e := newAuthTestServer(t, mockSvc.NewMockTokenService(t))
	rec := doProtectedRequest(e, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "INVALID_TOKEN", resp.Error.Code)
}

// Expired, tampered and malformed tokens must be indistinguishable in the
// response body.
func TestAuthMiddleware_DecodeFailuresCollapse(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.On("Validate", "expired.token").Return(nil, service.ErrTokenExpired)
	tokenSvc.On("Validate", "tampered.token").Return(nil, service.ErrTokenSignatureInvalid)
	tokenSvc.On("Validate", "garbage").Return(nil, service.ErrTokenMalformed)

	e := newAuthTestServer(t, tokenSvc)

	var bodies []string
	for _, token := range []string{"expired.token", "tampered.token", "garbage"} {
		rec := doProtectedRequest(e, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestAuthMiddleware_NotConfigured(t *testing.T) {
	e := newAuthTestServer(t, nil)
	rec := doProtectedRequest(e, "Bearer any.token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "AUTH_NOT_CONFIGURED", resp.Error.Code)
}
