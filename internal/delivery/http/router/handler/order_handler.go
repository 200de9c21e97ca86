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

// OrderHandler holds dependencies for order ledger handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateOrderStatusInput carries the new status; any non-empty string is
// accepted, the ledger enforces no transition rules.
type updateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// Place handles the order placement request.
func (h *OrderHandler) Place(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Place(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed successfully")
}

// Get handles fetching one order by id.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.Get(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// List handles the buyer order history query. A buyer with no orders is an
// empty array, not an error.
func (h *OrderHandler) List(c echo.Context) error {
	buyerID, err := uuid.Parse(c.QueryParam("buyer_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing buyer_id")
	}

	orders, err := h.uc.ListByBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles the order status update request.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input *updateOrderStatusInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"order_id": orderID.String(),
		"status":   input.Status,
	}, "Order status updated successfully")
}
