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

	"afritrade/internal/delivery/http/validator"
	"afritrade/internal/domain/entity"
	"afritrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIdentityUsecase returns canned results so the handler can be tested
// without the full service stack.
type stubIdentityUsecase struct {
	loginOutput *usecase.LoginOutput
	loginErr    error
	user        *entity.User
	userErr     error
}

func (s *stubIdentityUsecase) RegisterClient(ctx context.Context, input *usecase.RegisterClientInput) (*usecase.RegisterOutput, error) {
	return &usecase.RegisterOutput{Role: entity.RoleClient, GeneratedID: uuid.New()}, nil
}

func (s *stubIdentityUsecase) RegisterSupplier(ctx context.Context, input *usecase.RegisterSupplierInput) (*usecase.RegisterOutput, error) {
	return &usecase.RegisterOutput{Role: entity.RoleSupplier, GeneratedID: uuid.New()}, nil
}

func (s *stubIdentityUsecase) RegisterTransporter(ctx context.Context, input *usecase.RegisterTransporterInput) (*usecase.RegisterOutput, error) {
	return &usecase.RegisterOutput{Role: entity.RoleTransporter, GeneratedID: uuid.New()}, nil
}

func (s *stubIdentityUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func (s *stubIdentityUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.user, s.userErr
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestUserHandler_Login(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	handler := NewUserHandler(
		&stubIdentityUsecase{loginOutput: &usecase.LoginOutput{Role: entity.RoleSupplier, GeneratedID: userID}},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := newTestEcho()
	body := `{"email":"mills@example.com","password":"supplier-secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Role   string `json:"role"`
			UserID string `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "supplier", envelope.Data.Role)
	assert.Equal(t, userID.String(), envelope.Data.UserID)
}

func TestUserHandler_LoginNullBody(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(
		&stubIdentityUsecase{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`null`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Parallel()

	user := &entity.User{
		GeneratedID:  uuid.New(),
		Role:         entity.RoleClient,
		Email:        "amina@example.com",
		Name:         "Amina Traders",
		Location:     "Lagos",
		PasswordHash: "$2a$10$secret",
		Client:       &entity.ClientProfile{BusinessType: "SME", TradeFocus: "textiles"},
	}
	handler := NewUserHandler(
		&stubIdentityUsecase{user: user},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues(user.GeneratedID.String())

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "amina@example.com")
	assert.NotContains(t, rec.Body.String(), user.PasswordHash, "password hash must never leave the service")
}

func TestUserHandler_GetUserInvalidID(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(
		&stubIdentityUsecase{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
