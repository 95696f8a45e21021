package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/delivery/http/middleware"
	"tally/internal/delivery/http/validator"
	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/usecase"
)

// stubUserUsecase returns canned results so handler behavior can be tested
// without the full stack.
type stubUserUsecase struct {
	registerOut *usecase.AuthOutput
	registerErr error
	loginOut    *usecase.AuthOutput
	loginErr    error
	currentUser *entity.User
	currentErr  error
}

func (s *stubUserUsecase) Register(context.Context, *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.registerOut, s.registerErr
}

func (s *stubUserUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.loginOut, s.loginErr
}

func (s *stubUserUsecase) GetCurrentUser(context.Context, uuid.UUID) (*entity.User, error) {
	return s.currentUser, s.currentErr
}

func newHandlerTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func TestUserHandler_Register_Created(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "$argon2id$...",
		FullName:     "Test User",
		CreatedAt:    time.Now(),
	}
	uc := &stubUserUsecase{registerOut: &usecase.AuthOutput{Token: "signed.token", User: user}}
	h := NewUserHandler(uc, slog.Default())

	e := newHandlerTestServer(t)
	e.POST("/api/auth/register", h.Register)

	body := `{"email":"test@example.com","password":"password1234","full_name":"Test User"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.token")
	assert.Contains(t, rec.Body.String(), user.ID.String())
	// The stored hash must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestUserHandler_Register_ValidationFailed(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{}, slog.Default())

	e := newHandlerTestServer(t)
	e.POST("/api/auth/register", h.Register)

	cases := []string{
		`{"email":"not-an-email","password":"password1234","full_name":"Test"}`,
		`{"email":"test@example.com","password":"short","full_name":"Test"}`,
		`{"email":"test@example.com","password":"password1234"}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)

		var resp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	}
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubUserUsecase{loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("login failed")}
	h := NewUserHandler(uc, slog.Default())

	e := newHandlerTestServer(t)
	e.POST("/api/auth/login", h.Login)

	body := `{"email":"test@example.com","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_Me(t *testing.T) {
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		FullName: "Test User",
	}
	h := NewUserHandler(&stubUserUsecase{currentUser: user}, slog.Default())

	e := newHandlerTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", user.ID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
}
