// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"afritrade/internal/delivery/http/response"
	"afritrade/internal/domain/entity"
	"afritrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for registration and authentication handlers.
type UserHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// userResponse is the outward shape of an account. The password hash never
// leaves the service.
type userResponse struct {
	UserID   uuid.UUID   `json:"user_id"`
	Role     entity.Role `json:"role"`
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Location string      `json:"location"`

	Client      *entity.ClientProfile      `json:"client,omitempty"`
	Supplier    *entity.SupplierProfile    `json:"supplier,omitempty"`
	Transporter *entity.TransporterProfile `json:"transporter,omitempty"`
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		UserID:      user.GeneratedID,
		Role:        user.Role,
		Email:       user.Email,
		Name:        user.Name,
		Location:    user.Location,
		Client:      user.Client,
		Supplier:    user.Supplier,
		Transporter: user.Transporter,
	}
}

// RegisterClient handles the client registration request.
func (h *UserHandler) RegisterClient(c echo.Context) error {
	var input *usecase.RegisterClientInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterClient(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Client registered successfully")
}

// RegisterSupplier handles the supplier registration request.
func (h *UserHandler) RegisterSupplier(c echo.Context) error {
	var input *usecase.RegisterSupplierInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterSupplier(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Supplier registered successfully")
}

// RegisterTransporter handles the transporter registration request.
func (h *UserHandler) RegisterTransporter(c echo.Context) error {
	var input *usecase.RegisterTransporterInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterTransporter(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Transporter registered successfully")
}

// Login handles the login request. The matched role comes back in the body;
// no token or session is issued.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetUser resolves a generated id to an account across all role collections.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
