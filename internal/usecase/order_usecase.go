// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"afritrade/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required to record a purchase intent.
// The status is caller-supplied; the ledger does not validate transitions.
type PlaceOrderInput struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	ProductName string    `json:"product_name" validate:"required"`
	BuyerName   string    `json:"buyer_name" validate:"required"`
	BuyerID     uuid.UUID `json:"buyer_id" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Status      string    `json:"status" validate:"required"` // e.g. Pending, Shipped, Delivered
}

// --- Output DTOs ---

// PlaceOrderOutput returns the generated order id.
type PlaceOrderOutput struct {
	OrderID uuid.UUID `json:"order_id"`
}

// OrderUsecase defines the interface for the order ledger.
type OrderUsecase interface {
	Place(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByBuyer is total: no matches is a valid empty slice.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus overwrites only the status field. Any string is accepted.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
